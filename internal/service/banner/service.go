package banner

import (
	"context"
	"fmt"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type BannerServicer interface {
	CreateBanner(ctx context.Context, req *model.CreateBannerRequest) (*model.Banner, error)
	GetBanner(ctx context.Context, id int64) (*model.Banner, error)
	UpdateBanner(ctx context.Context, id int64, req *model.UpdateBannerRequest) (*model.Banner, error)
	DeleteBanner(ctx context.Context, id int64) error
	ListBanners(ctx context.Context, includeInactive bool) ([]*model.Banner, error)
}

type Service struct {
	repo repository.BannerRepository
}

func NewService(repo repository.BannerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateBanner(ctx context.Context, req *model.CreateBannerRequest) (*model.Banner, error) {
	banner := &model.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		IsHero:      req.IsHero,
	}
	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}
	return banner, nil
}

func (s *Service) GetBanner(ctx context.Context, id int64) (*model.Banner, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateBanner(ctx context.Context, id int64, req *model.UpdateBannerRequest) (*model.Banner, error) {
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteBanner(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListBanners(ctx context.Context, includeInactive bool) ([]*model.Banner, error) {
	return s.repo.List(ctx, !includeInactive)
}
