package location

import (
	"context"
	"fmt"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type LocationServicer interface {
	CreateLocation(ctx context.Context, req *model.CreateLocationRequest) (*model.Location, error)
	GetLocation(ctx context.Context, id int64) (*model.Location, error)
	UpdateLocation(ctx context.Context, id int64, req *model.UpdateLocationRequest) (*model.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
	ListLocations(ctx context.Context, includeDisabled bool) ([]*model.Location, error)
}

type Service struct {
	repo repository.LocationRepository
}

func NewService(repo repository.LocationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateLocation(ctx context.Context, req *model.CreateLocationRequest) (*model.Location, error) {
	location := &model.Location{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Image:   req.Image,
	}
	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

func (s *Service) GetLocation(ctx context.Context, id int64) (*model.Location, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateLocation(ctx context.Context, id int64, req *model.UpdateLocationRequest) (*model.Location, error) {
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListLocations returns enabled locations only unless includeDisabled is
// set, which the admin listing uses.
func (s *Service) ListLocations(ctx context.Context, includeDisabled bool) ([]*model.Location, error) {
	return s.repo.List(ctx, !includeDisabled)
}
