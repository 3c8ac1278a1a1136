package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateSetClause(t *testing.T) {
	var u updateSet
	u.add("name", "Cardiology")
	u.add("is_active", false)

	clause, args := u.clause(1)
	assert.Equal(t, "name = $1, is_active = $2, updated_at = now()", clause)
	assert.Equal(t, []interface{}{"Cardiology", false}, args)
}

func TestUpdateSetClauseOffsetStart(t *testing.T) {
	var u updateSet
	u.add("status", "confirmed")

	clause, args := u.clause(3)
	assert.Equal(t, "status = $3, updated_at = now()", clause)
	assert.Len(t, args, 1)
}

func TestUpdateSetEmpty(t *testing.T) {
	var u updateSet
	assert.True(t, u.empty())
	u.add("name", "x")
	assert.False(t, u.empty())
}
