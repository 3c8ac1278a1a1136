package packages

import (
	"context"
	"fmt"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

type PackageServicer interface {
	CreatePackage(ctx context.Context, req *model.CreatePackageRequest) (*model.Package, error)
	GetPackage(ctx context.Context, id int64) (*model.Package, error)
	UpdatePackage(ctx context.Context, id int64, req *model.UpdatePackageRequest) (*model.Package, error)
	DeletePackage(ctx context.Context, id int64) error
	ListPackages(ctx context.Context, includeInactive bool, params model.ListParams) ([]*model.Package, int64, error)
}

type Service struct {
	repo repository.PackageRepository
}

func NewService(repo repository.PackageRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePackage(ctx context.Context, req *model.CreatePackageRequest) (*model.Package, error) {
	if req.DiscountPrice != nil && *req.DiscountPrice >= req.Price {
		return nil, apperrors.NewValidation("discount price must be lower than price", nil)
	}

	pkg := &model.Package{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		KeyFeatures:    req.KeyFeatures,
		Duration:       req.Duration,
		ReportDelivery: req.ReportDelivery,
		Image:          req.Image,
		AgeRange:       req.AgeRange,
	}
	if err := s.repo.Create(ctx, pkg, req.Tests); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return s.repo.Get(ctx, pkg.ID)
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*model.Package, error) {
	return s.repo.Get(ctx, id)
}

// UpdatePackage applies a partial update. The discount-below-price rule is
// enforced against the resulting row, so changing either side alone is
// checked against the stored value of the other.
func (s *Service) UpdatePackage(ctx context.Context, id int64, req *model.UpdatePackageRequest) (*model.Package, error) {
	if req.Price != nil || (req.DiscountPrice.Set && req.DiscountPrice.Value != nil) {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		price := current.Price
		if req.Price != nil {
			price = *req.Price
		}
		discount := current.DiscountPrice
		if req.DiscountPrice.Set {
			discount = req.DiscountPrice.Value
		}
		if discount != nil && *discount >= price {
			return nil, apperrors.NewValidation("discount price must be lower than price", nil)
		}
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPackages(ctx context.Context, includeInactive bool, params model.ListParams) ([]*model.Package, int64, error) {
	return s.repo.List(ctx, !includeInactive, params)
}
