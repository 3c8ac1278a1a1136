package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type departmentRepository struct {
	BaseRepository
}

func NewDepartmentRepository(db *sqlx.DB) repository.DepartmentRepository {
	return &departmentRepository{NewBaseRepository(db)}
}

const departmentColumns = `
	id, name, heading, description, image, overview, achievements, legacy,
	treatments, facilities, expertise, why_choose, faqs, is_active,
	created_at, updated_at
`

func (r *departmentRepository) Create(ctx context.Context, department *model.Department, locationIDs []int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO departments (
				name, heading, description, image, overview, achievements,
				legacy, treatments, facilities, expertise, why_choose, faqs
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, is_active, created_at, updated_at
		`
		err := tx.QueryRowxContext(ctx, query,
			department.Name,
			department.Heading,
			department.Description,
			department.Image,
			department.Overview,
			department.Achievements,
			department.Legacy,
			department.Treatments,
			department.Facilities,
			department.Expertise,
			department.WhyChoose,
			department.FAQs,
		).Scan(&department.ID, &department.IsActive, &department.CreatedAt, &department.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create department: %w", mapError(err, "department"))
		}
		return linkDepartmentLocations(ctx, tx, department.ID, locationIDs)
	})
}

func (r *departmentRepository) Get(ctx context.Context, id int64) (*model.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
	var department model.Department
	if err := r.db.GetContext(ctx, &department, query, id); err != nil {
		return nil, mapError(err, "department")
	}
	if err := r.loadLocations(ctx, []*model.Department{&department}); err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*model.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE name = $1`
	var department model.Department
	if err := r.db.GetContext(ctx, &department, query, name); err != nil {
		return nil, mapError(err, "department")
	}
	return &department, nil
}

func (r *departmentRepository) Update(ctx context.Context, id int64, req *model.UpdateDepartmentRequest) error {
	var set updateSet
	if req.Name != nil {
		set.add("name", *req.Name)
	}
	if req.Heading != nil {
		set.add("heading", *req.Heading)
	}
	if req.Description != nil {
		set.add("description", *req.Description)
	}
	if req.Image != nil {
		set.add("image", *req.Image)
	}
	if req.Overview != nil {
		set.add("overview", *req.Overview)
	}
	if req.Achievements != nil {
		set.add("achievements", *req.Achievements)
	}
	if req.Legacy != nil {
		set.add("legacy", *req.Legacy)
	}
	if req.Treatments != nil {
		set.add("treatments", *req.Treatments)
	}
	if req.Facilities != nil {
		set.add("facilities", *req.Facilities)
	}
	if req.Expertise != nil {
		set.add("expertise", *req.Expertise)
	}
	if req.WhyChoose != nil {
		set.add("why_choose", *req.WhyChoose)
	}
	if req.FAQs != nil {
		set.add("faqs", *req.FAQs)
	}
	if req.IsActive != nil {
		set.add("is_active", *req.IsActive)
	}

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if !set.empty() {
			clause, args := set.clause(1)
			query := fmt.Sprintf("UPDATE departments SET %s WHERE id = $%d", clause, len(args)+1)
			res, err := tx.ExecContext(ctx, query, append(args, id)...)
			if err != nil {
				return fmt.Errorf("failed to update department: %w", mapError(err, "department"))
			}
			if err := rowsAffected(res, "department"); err != nil {
				return err
			}
		}
		if req.Locations != nil {
			if err := replaceDepartmentLocations(ctx, tx, id, *req.Locations); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return rowsAffected(res, "department")
}

func (r *departmentRepository) List(ctx context.Context, activeOnly bool) ([]*model.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY created_at DESC"

	departments := []*model.Department{}
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if err := r.loadLocations(ctx, departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) ReplaceLocations(ctx context.Context, departmentID int64, locationIDs []int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		return replaceDepartmentLocations(ctx, tx, departmentID, locationIDs)
	})
}

func (r *departmentRepository) FilterExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return filterExistingIDs(ctx, r.db, "departments", ids)
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM departments`); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return count, nil
}

// loadLocations batch-fills the Locations slice on each department through
// the department_locations junction.
func (r *departmentRepository) loadLocations(ctx context.Context, departments []*model.Department) error {
	if len(departments) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(departments))
	byID := make(map[int64]*model.Department, len(departments))
	for _, d := range departments {
		ids = append(ids, d.ID)
		byID[d.ID] = d
		d.Locations = []model.LocationRef{}
	}

	query := `
		SELECT dl.department_id, l.id, l.name, l.address, l.phone, l.email
		FROM department_locations dl
		JOIN locations l ON l.id = dl.location_id
		WHERE dl.department_id = ANY($1)
		ORDER BY l.name ASC
	`
	var rows []struct {
		DepartmentID int64 `db:"department_id"`
		model.LocationRef
	}
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to load department locations: %w", err)
	}
	for _, row := range rows {
		d := byID[row.DepartmentID]
		d.Locations = append(d.Locations, row.LocationRef)
	}
	return nil
}

// replaceDepartmentLocations clears and reinserts the junction rows for one
// department. Replace-by-delete-then-insert rather than an incremental diff:
// idempotent, not minimal.
func replaceDepartmentLocations(ctx context.Context, tx *sqlx.Tx, departmentID int64, locationIDs []int64) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM department_locations WHERE department_id = $1`, departmentID); err != nil {
		return fmt.Errorf("failed to clear department locations: %w", err)
	}
	return linkDepartmentLocations(ctx, tx, departmentID, locationIDs)
}

func linkDepartmentLocations(ctx context.Context, tx *sqlx.Tx, departmentID int64, locationIDs []int64) error {
	if len(locationIDs) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO department_locations (department_id, location_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, departmentID, pq.Array(locationIDs))
	if err != nil {
		return fmt.Errorf("failed to link department locations: %w", mapError(err, "location"))
	}
	return nil
}
