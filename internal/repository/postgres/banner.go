package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type bannerRepository struct {
	BaseRepository
}

func NewBannerRepository(db *sqlx.DB) repository.BannerRepository {
	return &bannerRepository{NewBaseRepository(db)}
}

func (r *bannerRepository) Create(ctx context.Context, banner *model.Banner) error {
	query := `
		INSERT INTO banners (title, description, image, link, is_hero)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		banner.Title,
		banner.Description,
		banner.Image,
		banner.Link,
		banner.IsHero,
	).Scan(&banner.ID, &banner.IsActive, &banner.CreatedAt, &banner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", mapError(err, "banner"))
	}
	return nil
}

func (r *bannerRepository) Get(ctx context.Context, id int64) (*model.Banner, error) {
	query := `
		SELECT id, title, description, image, link, is_active, is_hero, created_at, updated_at
		FROM banners
		WHERE id = $1
	`
	var banner model.Banner
	if err := r.db.GetContext(ctx, &banner, query, id); err != nil {
		return nil, mapError(err, "banner")
	}
	return &banner, nil
}

func (r *bannerRepository) Update(ctx context.Context, id int64, req *model.UpdateBannerRequest) error {
	var set updateSet
	if req.Title != nil {
		set.add("title", *req.Title)
	}
	if req.Description != nil {
		set.add("description", *req.Description)
	}
	if req.Image != nil {
		set.add("image", *req.Image)
	}
	if req.Link != nil {
		set.add("link", *req.Link)
	}
	if req.IsActive != nil {
		set.add("is_active", *req.IsActive)
	}
	if req.IsHero != nil {
		set.add("is_hero", *req.IsHero)
	}
	if set.empty() {
		_, err := r.Get(ctx, id)
		return err
	}

	clause, args := set.clause(1)
	query := fmt.Sprintf("UPDATE banners SET %s WHERE id = $%d", clause, len(args)+1)
	res, err := r.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return fmt.Errorf("failed to update banner: %w", err)
	}
	return rowsAffected(res, "banner")
}

func (r *bannerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	return rowsAffected(res, "banner")
}

func (r *bannerRepository) List(ctx context.Context, activeOnly bool) ([]*model.Banner, error) {
	query := `
		SELECT id, title, description, image, link, is_active, is_hero, created_at, updated_at
		FROM banners
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY created_at DESC"

	banners := []*model.Banner{}
	if err := r.db.SelectContext(ctx, &banners, query); err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}
