package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{NewBaseRepository(db)}
}

const appointmentColumns = `
	id, full_name, mobile_number, email, location_id, department_id,
	doctor_id, reason_for_visit, message, preferred_date, preferred_time,
	status, package_id, type, created_at, updated_at
`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			full_name, mobile_number, email, location_id, department_id,
			doctor_id, reason_for_visit, message, preferred_date,
			preferred_time, status, package_id, type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		appointment.FullName,
		appointment.MobileNumber,
		appointment.Email,
		appointment.LocationID,
		appointment.DepartmentID,
		appointment.DoctorID,
		appointment.ReasonForVisit,
		appointment.Message,
		appointment.PreferredDate,
		appointment.PreferredTime,
		appointment.Status,
		appointment.PackageID,
		appointment.Type,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", mapError(err, "appointment"))
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, mapError(err, "appointment")
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) error {
	var set updateSet
	if req.Status != nil {
		set.add("status", *req.Status)
	}
	if req.PreferredDate.Set {
		set.add("preferred_date", req.PreferredDate.Value)
	}
	if req.PreferredTime != nil {
		set.add("preferred_time", *req.PreferredTime)
	}
	if req.Message != nil {
		set.add("message", *req.Message)
	}
	if set.empty() {
		_, err := r.Get(ctx, id)
		return err
	}

	clause, args := set.clause(1)
	query := fmt.Sprintf("UPDATE appointments SET %s WHERE id = $%d", clause, len(args)+1)
	res, err := r.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", mapError(err, "appointment"))
	}
	return rowsAffected(res, "appointment")
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return rowsAffected(res, "appointment")
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, int64, error) {
	where, args := buildAppointmentWhere(filters)

	var total int64
	countQuery := `SELECT COUNT(*) FROM appointments` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	query := `SELECT ` + appointmentColumns + ` FROM appointments` + where +
		" ORDER BY created_at DESC"
	if filters.Paginated() {
		args = append(args, filters.Limit, filters.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, total, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM appointments`); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query := `SELECT status, COUNT(*) AS count FROM appointments GROUP BY status`
	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count appointments by status: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func buildAppointmentWhere(filters *model.AppointmentFilters) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filters.LocationID > 0 {
		add("location_id = $%d", filters.LocationID)
	}
	if filters.DepartmentID > 0 {
		add("department_id = $%d", filters.DepartmentID)
	}
	if filters.Type > 0 {
		add("type = $%d", filters.Type)
	}
	if filters.Status != "" {
		add("status = $%d", filters.Status)
	}
	if filters.StartDate != "" {
		add("preferred_date >= $%d", filters.StartDate)
	}
	if filters.EndDate != "" {
		add("preferred_date <= $%d", filters.EndDate)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
