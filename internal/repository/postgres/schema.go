package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements creates the full relational schema. Ordering matters:
// parents before children so the foreign keys resolve.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		address TEXT NOT NULL,
		phone VARCHAR(20) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		enabled BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_locations_enabled ON locations (enabled)`,

	`CREATE TABLE IF NOT EXISTS departments (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		heading VARCHAR(500) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		overview TEXT NOT NULL DEFAULT '',
		achievements TEXT NOT NULL DEFAULT '',
		legacy VARCHAR(500) NOT NULL DEFAULT '',
		treatments JSONB NOT NULL DEFAULT '[]',
		facilities JSONB NOT NULL DEFAULT '[]',
		expertise TEXT NOT NULL DEFAULT '',
		why_choose JSONB NOT NULL DEFAULT '[]',
		faqs JSONB NOT NULL DEFAULT '[]',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_departments_is_active ON departments (is_active)`,

	`CREATE TABLE IF NOT EXISTS department_locations (
		department_id BIGINT NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
		location_id BIGINT NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (department_id, location_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_department_locations_location ON department_locations (location_id)`,

	`CREATE TABLE IF NOT EXISTS doctors (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		qualifications JSONB NOT NULL DEFAULT '[]',
		experience INT,
		image TEXT NOT NULL DEFAULT '',
		availability VARCHAR(20) NOT NULL DEFAULT 'available'
			CHECK (availability IN ('available', 'busy', 'on_leave')),
		location_id BIGINT NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_doctors_location ON doctors (location_id)`,
	`CREATE INDEX IF NOT EXISTS idx_doctors_name ON doctors (name)`,

	`CREATE TABLE IF NOT EXISTS doctor_departments (
		doctor_id BIGINT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
		department_id BIGINT NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (doctor_id, department_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_doctor_departments_department ON doctor_departments (department_id)`,

	`CREATE TABLE IF NOT EXISTS doctor_specializations (
		id BIGSERIAL PRIMARY KEY,
		doctor_id BIGINT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
		specialization VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_doctor_specializations_doctor ON doctor_specializations (doctor_id)`,

	`CREATE TABLE IF NOT EXISTS packages (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		discount_price NUMERIC(10,2),
		key_features JSONB NOT NULL DEFAULT '[]',
		duration VARCHAR(255) NOT NULL DEFAULT '',
		report_delivery VARCHAR(255) NOT NULL DEFAULT '',
		image VARCHAR(500) NOT NULL DEFAULT '',
		age_range VARCHAR(255) NOT NULL DEFAULT 'All ages',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS tests (
		id BIGSERIAL PRIMARY KEY,
		package_id BIGINT NOT NULL REFERENCES packages(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(255) NOT NULL DEFAULT '',
		normal_range VARCHAR(255) NOT NULL DEFAULT '',
		unit VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tests_package ON tests (package_id)`,

	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		mobile_number VARCHAR(20) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		location_id BIGINT REFERENCES locations(id) ON DELETE SET NULL,
		department_id BIGINT REFERENCES departments(id) ON DELETE SET NULL,
		doctor_id BIGINT REFERENCES doctors(id) ON DELETE SET NULL,
		reason_for_visit VARCHAR(255) NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		preferred_date DATE,
		preferred_time VARCHAR(10) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
		package_id BIGINT REFERENCES packages(id) ON DELETE CASCADE,
		type INT NOT NULL DEFAULT 1 CHECK (type IN (1, 2)),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments (status)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_location ON appointments (location_id)`,

	`CREATE TABLE IF NOT EXISTS banners (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL,
		link VARCHAR(500) NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		is_hero BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_banners_is_active ON banners (is_active)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id BIGSERIAL PRIMARY KEY,
		contact_type VARCHAR(10) NOT NULL CHECK (contact_type IN ('email', 'mobile')),
		contact_value VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates any missing tables and indexes.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}

// Seed inserts the default helpline contact when the contacts table is empty.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int64
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM contacts`); err != nil {
		return fmt.Errorf("failed to count contacts: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO contacts (contact_type, contact_value, description, is_active)
		VALUES ('mobile', '+91-9876543210', 'Available 24/7 for customer support', true)
	`)
	if err != nil {
		return fmt.Errorf("failed to seed contacts: %w", err)
	}
	return nil
}
