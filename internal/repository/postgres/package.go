package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type packageRepository struct {
	BaseRepository
}

func NewPackageRepository(db *sqlx.DB) repository.PackageRepository {
	return &packageRepository{NewBaseRepository(db)}
}

const packageColumns = `
	id, name, description, price, discount_price, key_features, duration,
	report_delivery, image, age_range, is_active, created_at, updated_at
`

func (r *packageRepository) Create(ctx context.Context, pkg *model.Package, tests []model.TestInput) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO packages (
				name, description, price, discount_price, key_features,
				duration, report_delivery, image, age_range
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, age_range, is_active, created_at, updated_at
		`
		ageRange := pkg.AgeRange
		if ageRange == "" {
			ageRange = "All ages"
		}
		err := tx.QueryRowxContext(ctx, query,
			pkg.Name,
			pkg.Description,
			pkg.Price,
			pkg.DiscountPrice,
			pkg.KeyFeatures,
			pkg.Duration,
			pkg.ReportDelivery,
			pkg.Image,
			ageRange,
		).Scan(&pkg.ID, &pkg.AgeRange, &pkg.IsActive, &pkg.CreatedAt, &pkg.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create package: %w", mapError(err, "package"))
		}
		return insertPackageTests(ctx, tx, pkg.ID, tests)
	})
}

func (r *packageRepository) Get(ctx context.Context, id int64) (*model.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`
	var pkg model.Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		return nil, mapError(err, "package")
	}
	if err := r.loadTests(ctx, []*model.Package{&pkg}); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) Update(ctx context.Context, id int64, req *model.UpdatePackageRequest) error {
	var set updateSet
	if req.Name != nil {
		set.add("name", *req.Name)
	}
	if req.Description != nil {
		set.add("description", *req.Description)
	}
	if req.Price != nil {
		set.add("price", *req.Price)
	}
	if req.DiscountPrice.Set {
		set.add("discount_price", req.DiscountPrice.Value)
	}
	if req.KeyFeatures != nil {
		set.add("key_features", *req.KeyFeatures)
	}
	if req.Duration != nil {
		set.add("duration", *req.Duration)
	}
	if req.ReportDelivery != nil {
		set.add("report_delivery", *req.ReportDelivery)
	}
	if req.Image != nil {
		set.add("image", *req.Image)
	}
	if req.AgeRange != nil {
		set.add("age_range", *req.AgeRange)
	}
	if req.IsActive != nil {
		set.add("is_active", *req.IsActive)
	}

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if !set.empty() {
			clause, args := set.clause(1)
			query := fmt.Sprintf("UPDATE packages SET %s WHERE id = $%d", clause, len(args)+1)
			res, err := tx.ExecContext(ctx, query, append(args, id)...)
			if err != nil {
				return fmt.Errorf("failed to update package: %w", mapError(err, "package"))
			}
			if err := rowsAffected(res, "package"); err != nil {
				return err
			}
		}
		if req.Tests != nil {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM tests WHERE package_id = $1`, id); err != nil {
				return fmt.Errorf("failed to clear package tests: %w", err)
			}
			if err := insertPackageTests(ctx, tx, id, *req.Tests); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *packageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return rowsAffected(res, "package")
}

func (r *packageRepository) List(ctx context.Context, activeOnly bool, params model.ListParams) ([]*model.Package, int64, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active = true"
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM packages`+where); err != nil {
		return nil, 0, fmt.Errorf("failed to count packages: %w", err)
	}

	query := `SELECT ` + packageColumns + ` FROM packages` + where + " ORDER BY id DESC"
	args := []interface{}{}
	if params.Paginated() {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, params.Limit, params.Offset)
	}

	packages := []*model.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list packages: %w", err)
	}
	if err := r.loadTests(ctx, packages); err != nil {
		return nil, 0, err
	}
	return packages, total, nil
}

func (r *packageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM packages`); err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

func (r *packageRepository) loadTests(ctx context.Context, packages []*model.Package) error {
	if len(packages) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(packages))
	byID := make(map[int64]*model.Package, len(packages))
	for _, p := range packages {
		ids = append(ids, p.ID)
		byID[p.ID] = p
		p.Tests = []model.Test{}
	}

	query := `
		SELECT id, package_id, name, category, normal_range, unit, created_at, updated_at
		FROM tests
		WHERE package_id = ANY($1)
		ORDER BY id ASC
	`
	var tests []model.Test
	if err := r.db.SelectContext(ctx, &tests, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to load package tests: %w", err)
	}
	for _, test := range tests {
		p := byID[test.PackageID]
		p.Tests = append(p.Tests, test)
	}
	return nil
}

func insertPackageTests(ctx context.Context, tx *sqlx.Tx, packageID int64, tests []model.TestInput) error {
	for _, test := range tests {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tests (package_id, name, category, normal_range, unit)
			VALUES ($1, $2, $3, $4, $5)
		`, packageID, test.Name, test.Category, test.NormalRange, test.Unit); err != nil {
			return fmt.Errorf("failed to insert package test: %w", mapError(err, "package"))
		}
	}
	return nil
}
