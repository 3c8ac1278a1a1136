package doctor

import (
	"context"
	"fmt"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

type DoctorServicer interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id int64) error
	ListDoctors(ctx context.Context, params model.ListParams) ([]*model.Doctor, int64, error)
	SearchDoctors(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error)
}

type Service struct {
	repo        repository.DoctorRepository
	departments repository.DepartmentRepository
}

func NewService(repo repository.DoctorRepository, departments repository.DepartmentRepository) *Service {
	return &Service{repo: repo, departments: departments}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	availability := model.DoctorAvailability(req.Availability)
	if req.Availability == "" {
		availability = model.DoctorAvailable
	}
	if !availability.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid availability %q", req.Availability), nil)
	}

	departmentIDs, err := s.validDepartmentIDs(ctx, req.Departments)
	if err != nil {
		return nil, err
	}

	doctor := &model.Doctor{
		Name:           req.Name,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		Image:          req.Image,
		Availability:   availability,
		LocationID:     req.LocationID,
	}
	if err := s.repo.Create(ctx, doctor, departmentIDs, req.Specializations); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return s.repo.Get(ctx, doctor.ID)
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	if req.Availability != nil && !model.DoctorAvailability(*req.Availability).Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid availability %q", *req.Availability), nil)
	}
	if req.Departments != nil {
		departmentIDs, err := s.validDepartmentIDs(ctx, *req.Departments)
		if err != nil {
			return nil, err
		}
		req.Departments = &departmentIDs
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, params model.ListParams) ([]*model.Doctor, int64, error) {
	return s.repo.List(ctx, params)
}

// SearchDoctors matches the query against doctor names and against
// specializations, then merges the two result sets. A doctor matching both
// ways appears once, keeping the position of its first match.
func (s *Service) SearchDoctors(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	byName, err := s.repo.SearchByName(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search doctors by name: %w", err)
	}
	bySpecialization, err := s.repo.SearchBySpecialization(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search doctors by specialization: %w", err)
	}

	seen := make(map[int64]bool, len(byName)+len(bySpecialization))
	merged := make([]*model.Doctor, 0, len(byName)+len(bySpecialization))
	for _, doctors := range [][]*model.Doctor{byName, bySpecialization} {
		for _, d := range doctors {
			if seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			merged = append(merged, d)
		}
	}
	return merged, nil
}

// validDepartmentIDs drops ids that do not reference an existing
// department. Unknown ids are silently ignored rather than rejected.
func (s *Service) validDepartmentIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	valid, err := s.departments.FilterExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to verify department ids: %w", err)
	}
	return valid, nil
}
