package department

import (
	"context"
	"fmt"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type DepartmentServicer interface {
	CreateDepartment(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error)
	GetDepartment(ctx context.Context, id int64) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id int64, req *model.UpdateDepartmentRequest) (*model.Department, error)
	UpdateDepartmentContent(ctx context.Context, id int64, req *model.UpdateDepartmentContentRequest) (*model.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
	ListDepartments(ctx context.Context, includeInactive bool) ([]*model.Department, error)
}

type Service struct {
	repo      repository.DepartmentRepository
	locations repository.LocationRepository
}

func NewService(repo repository.DepartmentRepository, locations repository.LocationRepository) *Service {
	return &Service{repo: repo, locations: locations}
}

func (s *Service) CreateDepartment(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error) {
	locationIDs, err := s.validLocationIDs(ctx, req.Locations)
	if err != nil {
		return nil, err
	}

	department := &model.Department{
		Name:         req.Name,
		Heading:      req.Heading,
		Description:  req.Description,
		Image:        req.Image,
		Overview:     req.Overview,
		Achievements: req.Achievements,
		Legacy:       req.Legacy,
		Treatments:   req.Treatments,
		Facilities:   req.Facilities,
		Expertise:    req.Expertise,
		WhyChoose:    req.WhyChoose,
		FAQs:         req.FAQs,
	}
	if err := s.repo.Create(ctx, department, locationIDs); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return s.repo.Get(ctx, department.ID)
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*model.Department, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, req *model.UpdateDepartmentRequest) (*model.Department, error) {
	if req.Locations != nil {
		locationIDs, err := s.validLocationIDs(ctx, *req.Locations)
		if err != nil {
			return nil, err
		}
		req.Locations = &locationIDs
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return s.repo.Get(ctx, id)
}

// UpdateDepartmentContent updates only the long-form content fields,
// leaving name, image and location links untouched.
func (s *Service) UpdateDepartmentContent(ctx context.Context, id int64, req *model.UpdateDepartmentContentRequest) (*model.Department, error) {
	full := &model.UpdateDepartmentRequest{
		Overview:     req.Overview,
		Achievements: req.Achievements,
		Legacy:       req.Legacy,
		Treatments:   req.Treatments,
		Facilities:   req.Facilities,
		Expertise:    req.Expertise,
		WhyChoose:    req.WhyChoose,
		FAQs:         req.FAQs,
	}
	if err := s.repo.Update(ctx, id, full); err != nil {
		return nil, fmt.Errorf("failed to update department content: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context, includeInactive bool) ([]*model.Department, error) {
	return s.repo.List(ctx, !includeInactive)
}

// validLocationIDs drops ids that do not reference an existing location.
// Unknown ids are silently ignored rather than rejected.
func (s *Service) validLocationIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	valid, err := s.locations.FilterExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to verify location ids: %w", err)
	}
	return valid, nil
}
