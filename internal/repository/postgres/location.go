package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type locationRepository struct {
	BaseRepository
}

func NewLocationRepository(db *sqlx.DB) repository.LocationRepository {
	return &locationRepository{NewBaseRepository(db)}
}

func (r *locationRepository) Create(ctx context.Context, location *model.Location) error {
	query := `
		INSERT INTO locations (name, address, phone, email, image, enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, enabled, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		location.Name,
		location.Address,
		location.Phone,
		location.Email,
		location.Image,
		true,
	).Scan(&location.ID, &location.Enabled, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", mapError(err, "location"))
	}
	return nil
}

func (r *locationRepository) Get(ctx context.Context, id int64) (*model.Location, error) {
	query := `
		SELECT id, name, address, phone, email, image, enabled, created_at, updated_at
		FROM locations
		WHERE id = $1
	`
	var location model.Location
	if err := r.db.GetContext(ctx, &location, query, id); err != nil {
		return nil, mapError(err, "location")
	}
	return &location, nil
}

func (r *locationRepository) GetByName(ctx context.Context, name string) (*model.Location, error) {
	query := `
		SELECT id, name, address, phone, email, image, enabled, created_at, updated_at
		FROM locations
		WHERE name = $1
	`
	var location model.Location
	if err := r.db.GetContext(ctx, &location, query, name); err != nil {
		return nil, mapError(err, "location")
	}
	return &location, nil
}

func (r *locationRepository) Update(ctx context.Context, id int64, req *model.UpdateLocationRequest) error {
	var set updateSet
	if req.Name != nil {
		set.add("name", *req.Name)
	}
	if req.Address != nil {
		set.add("address", *req.Address)
	}
	if req.Phone != nil {
		set.add("phone", *req.Phone)
	}
	if req.Email != nil {
		set.add("email", *req.Email)
	}
	if req.Image != nil {
		set.add("image", *req.Image)
	}
	if req.Enabled != nil {
		set.add("enabled", *req.Enabled)
	}
	if set.empty() {
		_, err := r.Get(ctx, id)
		return err
	}

	clause, args := set.clause(1)
	query := fmt.Sprintf("UPDATE locations SET %s WHERE id = $%d", clause, len(args)+1)
	res, err := r.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", mapError(err, "location"))
	}
	return rowsAffected(res, "location")
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return rowsAffected(res, "location")
}

func (r *locationRepository) List(ctx context.Context, enabledOnly bool) ([]*model.Location, error) {
	query := `
		SELECT id, name, address, phone, email, image, enabled, created_at, updated_at
		FROM locations
	`
	if enabledOnly {
		query += " WHERE enabled = true"
	}
	query += " ORDER BY created_at DESC"

	locations := []*model.Location{}
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (r *locationRepository) FilterExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return filterExistingIDs(ctx, r.db, "locations", ids)
}

func (r *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM locations`); err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}

// filterExistingIDs returns the subset of ids present in table, preserving
// the requested order and dropping duplicates. Unknown ids are silently
// dropped, not errored.
func filterExistingIDs(ctx context.Context, db *sqlx.DB, table string, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id = ANY($1)`, table)
	var existing []int64
	if err := db.SelectContext(ctx, &existing, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to filter %s ids: %w", table, err)
	}

	known := make(map[int64]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}
	out := make([]int64, 0, len(existing))
	seen := make(map[int64]bool, len(existing))
	for _, id := range ids {
		if known[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out, nil
}
