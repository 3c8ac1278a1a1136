package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaFor(t *testing.T, table string) string {
	t.Helper()
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			return stmt
		}
	}
	t.Fatalf("no CREATE TABLE statement for %s", table)
	return ""
}

func TestSchemaCascadeRules(t *testing.T) {
	cascades := map[string][]string{
		"doctors":                {"REFERENCES locations(id) ON DELETE CASCADE"},
		"doctor_departments":     {"REFERENCES doctors(id) ON DELETE CASCADE", "REFERENCES departments(id) ON DELETE CASCADE"},
		"doctor_specializations": {"REFERENCES doctors(id) ON DELETE CASCADE"},
		"department_locations":   {"REFERENCES departments(id) ON DELETE CASCADE", "REFERENCES locations(id) ON DELETE CASCADE"},
		"tests":                  {"REFERENCES packages(id) ON DELETE CASCADE"},
	}
	for table, clauses := range cascades {
		stmt := schemaFor(t, table)
		for _, clause := range clauses {
			assert.Contains(t, stmt, clause, table)
		}
	}

	appointments := schemaFor(t, "appointments")
	assert.Contains(t, appointments, "REFERENCES packages(id) ON DELETE CASCADE")
	for _, parent := range []string{"locations", "departments", "doctors"} {
		assert.Contains(t, appointments, "REFERENCES "+parent+"(id) ON DELETE SET NULL")
	}
}

func TestSchemaUniqueNames(t *testing.T) {
	for _, table := range []string{"locations", "departments", "packages"} {
		stmt := schemaFor(t, table)
		assert.Contains(t, stmt, "name VARCHAR(255) NOT NULL UNIQUE", table)
	}
}

func TestSchemaJunctionCompositeKeys(t *testing.T) {
	require.Contains(t, schemaFor(t, "doctor_departments"), "PRIMARY KEY (doctor_id, department_id)")
	require.Contains(t, schemaFor(t, "department_locations"), "PRIMARY KEY (department_id, location_id)")
}
