package repository

import (
	"context"

	"github.com/mediblues/directory-api/internal/model"
)

// All repository interfaces in one file
type (
	LocationRepository interface {
		Create(ctx context.Context, location *model.Location) error
		Get(ctx context.Context, id int64) (*model.Location, error)
		GetByName(ctx context.Context, name string) (*model.Location, error)
		Update(ctx context.Context, id int64, req *model.UpdateLocationRequest) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, enabledOnly bool) ([]*model.Location, error)
		FilterExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
		Count(ctx context.Context) (int64, error)
	}

	DepartmentRepository interface {
		Create(ctx context.Context, department *model.Department, locationIDs []int64) error
		Get(ctx context.Context, id int64) (*model.Department, error)
		GetByName(ctx context.Context, name string) (*model.Department, error)
		Update(ctx context.Context, id int64, req *model.UpdateDepartmentRequest) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, activeOnly bool) ([]*model.Department, error)
		ReplaceLocations(ctx context.Context, departmentID int64, locationIDs []int64) error
		FilterExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
		Count(ctx context.Context) (int64, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor, departmentIDs []int64, specializations []string) error
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		GetByName(ctx context.Context, name string) (*model.Doctor, error)
		Update(ctx context.Context, id int64, req *model.UpdateDoctorRequest) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, params model.ListParams) ([]*model.Doctor, int64, error)
		ReplaceDepartments(ctx context.Context, doctorID int64, departmentIDs []int64) error
		ReplaceSpecializations(ctx context.Context, doctorID int64, specializations []string) error
		SearchByName(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error)
		SearchBySpecialization(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error)
		Count(ctx context.Context) (int64, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Update(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, int64, error)
		Count(ctx context.Context) (int64, error)
		CountByStatus(ctx context.Context) (map[string]int64, error)
	}

	PackageRepository interface {
		Create(ctx context.Context, pkg *model.Package, tests []model.TestInput) error
		Get(ctx context.Context, id int64) (*model.Package, error)
		Update(ctx context.Context, id int64, req *model.UpdatePackageRequest) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, activeOnly bool, params model.ListParams) ([]*model.Package, int64, error)
		Count(ctx context.Context) (int64, error)
	}

	BannerRepository interface {
		Create(ctx context.Context, banner *model.Banner) error
		Get(ctx context.Context, id int64) (*model.Banner, error)
		Update(ctx context.Context, id int64, req *model.UpdateBannerRequest) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, activeOnly bool) ([]*model.Banner, error)
	}

	ContactRepository interface {
		Create(ctx context.Context, contact *model.Contact) error
		Get(ctx context.Context, id int64) (*model.Contact, error)
		Update(ctx context.Context, id int64, req *model.UpdateContactRequest) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, activeOnly bool) ([]*model.Contact, error)
	}
)
