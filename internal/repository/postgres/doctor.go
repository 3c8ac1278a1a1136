package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{NewBaseRepository(db)}
}

// doctorRow flattens a doctor joined with its location.
type doctorRow struct {
	model.Doctor
	LocID      int64  `db:"loc_id"`
	LocName    string `db:"loc_name"`
	LocAddress string `db:"loc_address"`
	LocPhone   string `db:"loc_phone"`
	LocEmail   string `db:"loc_email"`
}

const doctorSelect = `
	SELECT d.id, d.name, d.qualifications, d.experience, d.image,
		   d.availability, d.location_id, d.created_at, d.updated_at,
		   l.id AS loc_id, l.name AS loc_name, l.address AS loc_address,
		   l.phone AS loc_phone, l.email AS loc_email
	FROM doctors d
	JOIN locations l ON l.id = d.location_id
`

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor, departmentIDs []int64, specializations []string) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO doctors (name, qualifications, experience, image, availability, location_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`
		availability := doctor.Availability
		if availability == "" {
			availability = model.DoctorAvailable
		}
		err := tx.QueryRowxContext(ctx, query,
			doctor.Name,
			doctor.Qualifications,
			doctor.Experience,
			doctor.Image,
			availability,
			doctor.LocationID,
		).Scan(&doctor.ID, &doctor.CreatedAt, &doctor.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create doctor: %w", mapError(err, "location"))
		}
		doctor.Availability = availability

		if err := linkDoctorDepartments(ctx, tx, doctor.ID, departmentIDs); err != nil {
			return err
		}
		return insertDoctorSpecializations(ctx, tx, doctor.ID, specializations)
	})
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	var row doctorRow
	if err := r.db.GetContext(ctx, &row, doctorSelect+" WHERE d.id = $1", id); err != nil {
		return nil, mapError(err, "doctor")
	}
	doctors := assembleDoctors([]doctorRow{row})
	if err := r.loadAssociations(ctx, doctors); err != nil {
		return nil, err
	}
	return doctors[0], nil
}

func (r *doctorRepository) GetByName(ctx context.Context, name string) (*model.Doctor, error) {
	var row doctorRow
	if err := r.db.GetContext(ctx, &row, doctorSelect+" WHERE d.name = $1", name); err != nil {
		return nil, mapError(err, "doctor")
	}
	return assembleDoctors([]doctorRow{row})[0], nil
}

func (r *doctorRepository) Update(ctx context.Context, id int64, req *model.UpdateDoctorRequest) error {
	var set updateSet
	if req.Name != nil {
		set.add("name", *req.Name)
	}
	if req.Qualifications != nil {
		set.add("qualifications", *req.Qualifications)
	}
	if req.Experience != nil {
		set.add("experience", *req.Experience)
	}
	if req.Image != nil {
		set.add("image", *req.Image)
	}
	if req.Availability != nil {
		set.add("availability", *req.Availability)
	}
	if req.LocationID != nil {
		set.add("location_id", *req.LocationID)
	}

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if !set.empty() {
			clause, args := set.clause(1)
			query := fmt.Sprintf("UPDATE doctors SET %s WHERE id = $%d", clause, len(args)+1)
			res, err := tx.ExecContext(ctx, query, append(args, id)...)
			if err != nil {
				return fmt.Errorf("failed to update doctor: %w", mapError(err, "location"))
			}
			if err := rowsAffected(res, "doctor"); err != nil {
				return err
			}
		}
		if req.Departments != nil {
			if err := replaceDoctorDepartments(ctx, tx, id, *req.Departments); err != nil {
				return err
			}
		}
		if req.Specializations != nil {
			if err := replaceDoctorSpecializations(ctx, tx, id, *req.Specializations); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return rowsAffected(res, "doctor")
}

func (r *doctorRepository) List(ctx context.Context, params model.ListParams) ([]*model.Doctor, int64, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := doctorSelect + " ORDER BY d.experience DESC NULLS LAST, d.id DESC"
	args := []interface{}{}
	if params.Paginated() {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, params.Limit, params.Offset)
	}

	var rows []doctorRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list doctors: %w", err)
	}

	doctors := assembleDoctors(rows)
	if err := r.loadAssociations(ctx, doctors); err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) SearchByName(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	query := doctorSelect + " WHERE d.name ILIKE '%' || $1 || '%'"
	args := []interface{}{filters.Query}
	query, args = appendSearchFilters(query, args, filters)
	query += " ORDER BY d.id DESC"

	var rows []doctorRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search doctors by name: %w", err)
	}
	doctors := assembleDoctors(rows)
	if err := r.loadAssociations(ctx, doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) SearchBySpecialization(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	query := doctorSelect + `
		WHERE EXISTS (
			SELECT 1 FROM doctor_specializations s
			WHERE s.doctor_id = d.id AND s.specialization ILIKE '%' || $1 || '%'
		)`
	args := []interface{}{filters.Query}
	query, args = appendSearchFilters(query, args, filters)
	query += " ORDER BY d.id DESC"

	var rows []doctorRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search doctors by specialization: %w", err)
	}
	doctors := assembleDoctors(rows)
	if err := r.loadAssociations(ctx, doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) ReplaceDepartments(ctx context.Context, doctorID int64, departmentIDs []int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		return replaceDoctorDepartments(ctx, tx, doctorID, departmentIDs)
	})
}

func (r *doctorRepository) ReplaceSpecializations(ctx context.Context, doctorID int64, specializations []string) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		return replaceDoctorSpecializations(ctx, tx, doctorID, specializations)
	})
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM doctors`); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}

func appendSearchFilters(query string, args []interface{}, filters *model.DoctorSearchFilters) (string, []interface{}) {
	if filters.DepartmentID > 0 {
		args = append(args, filters.DepartmentID)
		query += fmt.Sprintf(`
			AND EXISTS (
				SELECT 1 FROM doctor_departments dd
				WHERE dd.doctor_id = d.id AND dd.department_id = $%d
			)`, len(args))
	}
	if filters.LocationID > 0 {
		args = append(args, filters.LocationID)
		query += fmt.Sprintf(" AND d.location_id = $%d", len(args))
	}
	return query, args
}

func assembleDoctors(rows []doctorRow) []*model.Doctor {
	doctors := make([]*model.Doctor, 0, len(rows))
	for _, row := range rows {
		doctor := row.Doctor
		doctor.Location = &model.LocationRef{
			ID:      row.LocID,
			Name:    row.LocName,
			Address: row.LocAddress,
			Phone:   row.LocPhone,
			Email:   row.LocEmail,
		}
		doctor.Departments = []model.DepartmentRef{}
		doctor.Specializations = []string{}
		doctors = append(doctors, &doctor)
	}
	return doctors
}

// loadAssociations batch-fills departments and specializations for the
// given doctors in two queries.
func (r *doctorRepository) loadAssociations(ctx context.Context, doctors []*model.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(doctors))
	byID := make(map[int64]*model.Doctor, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
		byID[d.ID] = d
	}

	deptQuery := `
		SELECT dd.doctor_id, dep.id, dep.name
		FROM doctor_departments dd
		JOIN departments dep ON dep.id = dd.department_id
		WHERE dd.doctor_id = ANY($1)
		ORDER BY dep.name ASC
	`
	var deptRows []struct {
		DoctorID int64 `db:"doctor_id"`
		model.DepartmentRef
	}
	if err := r.db.SelectContext(ctx, &deptRows, deptQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to load doctor departments: %w", err)
	}
	for _, row := range deptRows {
		d := byID[row.DoctorID]
		d.Departments = append(d.Departments, row.DepartmentRef)
	}

	specQuery := `
		SELECT doctor_id, specialization
		FROM doctor_specializations
		WHERE doctor_id = ANY($1)
		ORDER BY id ASC
	`
	var specRows []struct {
		DoctorID       int64  `db:"doctor_id"`
		Specialization string `db:"specialization"`
	}
	if err := r.db.SelectContext(ctx, &specRows, specQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to load doctor specializations: %w", err)
	}
	for _, row := range specRows {
		d := byID[row.DoctorID]
		d.Specializations = append(d.Specializations, row.Specialization)
	}
	return nil
}

func replaceDoctorDepartments(ctx context.Context, tx *sqlx.Tx, doctorID int64, departmentIDs []int64) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM doctor_departments WHERE doctor_id = $1`, doctorID); err != nil {
		return fmt.Errorf("failed to clear doctor departments: %w", err)
	}
	return linkDoctorDepartments(ctx, tx, doctorID, departmentIDs)
}

func linkDoctorDepartments(ctx context.Context, tx *sqlx.Tx, doctorID int64, departmentIDs []int64) error {
	if len(departmentIDs) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO doctor_departments (doctor_id, department_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, doctorID, pq.Array(departmentIDs))
	if err != nil {
		return fmt.Errorf("failed to link doctor departments: %w", mapError(err, "department"))
	}
	return nil
}

// replaceDoctorSpecializations deletes the batch and recreates one row per
// string, preserving list order as insertion order.
func replaceDoctorSpecializations(ctx context.Context, tx *sqlx.Tx, doctorID int64, specializations []string) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM doctor_specializations WHERE doctor_id = $1`, doctorID); err != nil {
		return fmt.Errorf("failed to clear doctor specializations: %w", err)
	}
	return insertDoctorSpecializations(ctx, tx, doctorID, specializations)
}

func insertDoctorSpecializations(ctx context.Context, tx *sqlx.Tx, doctorID int64, specializations []string) error {
	for _, spec := range specializations {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO doctor_specializations (doctor_id, specialization)
			VALUES ($1, $2)
		`, doctorID, spec); err != nil {
			return fmt.Errorf("failed to insert doctor specialization: %w", mapError(err, "doctor"))
		}
	}
	return nil
}
