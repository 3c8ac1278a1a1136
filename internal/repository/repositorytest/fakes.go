// Package repositorytest provides function-field fakes for the repository
// interfaces. A nil function field yields a zero-value success.
package repositorytest

import (
	"context"

	"github.com/mediblues/directory-api/internal/model"
)

type LocationRepo struct {
	CreateFn            func(ctx context.Context, location *model.Location) error
	GetFn               func(ctx context.Context, id int64) (*model.Location, error)
	GetByNameFn         func(ctx context.Context, name string) (*model.Location, error)
	UpdateFn            func(ctx context.Context, id int64, req *model.UpdateLocationRequest) error
	DeleteFn            func(ctx context.Context, id int64) error
	ListFn              func(ctx context.Context, enabledOnly bool) ([]*model.Location, error)
	FilterExistingIDsFn func(ctx context.Context, ids []int64) ([]int64, error)
	CountFn             func(ctx context.Context) (int64, error)
}

func (f *LocationRepo) Create(ctx context.Context, location *model.Location) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, location)
	}
	return nil
}

func (f *LocationRepo) Get(ctx context.Context, id int64) (*model.Location, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &model.Location{ID: id}, nil
}

func (f *LocationRepo) GetByName(ctx context.Context, name string) (*model.Location, error) {
	if f.GetByNameFn != nil {
		return f.GetByNameFn(ctx, name)
	}
	return &model.Location{Name: name}, nil
}

func (f *LocationRepo) Update(ctx context.Context, id int64, req *model.UpdateLocationRequest) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil
}

func (f *LocationRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *LocationRepo) List(ctx context.Context, enabledOnly bool) ([]*model.Location, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, enabledOnly)
	}
	return nil, nil
}

func (f *LocationRepo) FilterExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if f.FilterExistingIDsFn != nil {
		return f.FilterExistingIDsFn(ctx, ids)
	}
	return ids, nil
}

func (f *LocationRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type DepartmentRepo struct {
	CreateFn            func(ctx context.Context, department *model.Department, locationIDs []int64) error
	GetFn               func(ctx context.Context, id int64) (*model.Department, error)
	GetByNameFn         func(ctx context.Context, name string) (*model.Department, error)
	UpdateFn            func(ctx context.Context, id int64, req *model.UpdateDepartmentRequest) error
	DeleteFn            func(ctx context.Context, id int64) error
	ListFn              func(ctx context.Context, activeOnly bool) ([]*model.Department, error)
	ReplaceLocationsFn  func(ctx context.Context, departmentID int64, locationIDs []int64) error
	FilterExistingIDsFn func(ctx context.Context, ids []int64) ([]int64, error)
	CountFn             func(ctx context.Context) (int64, error)
}

func (f *DepartmentRepo) Create(ctx context.Context, department *model.Department, locationIDs []int64) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, department, locationIDs)
	}
	return nil
}

func (f *DepartmentRepo) Get(ctx context.Context, id int64) (*model.Department, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &model.Department{ID: id}, nil
}

func (f *DepartmentRepo) GetByName(ctx context.Context, name string) (*model.Department, error) {
	if f.GetByNameFn != nil {
		return f.GetByNameFn(ctx, name)
	}
	return &model.Department{Name: name}, nil
}

func (f *DepartmentRepo) Update(ctx context.Context, id int64, req *model.UpdateDepartmentRequest) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil
}

func (f *DepartmentRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *DepartmentRepo) List(ctx context.Context, activeOnly bool) ([]*model.Department, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, activeOnly)
	}
	return nil, nil
}

func (f *DepartmentRepo) ReplaceLocations(ctx context.Context, departmentID int64, locationIDs []int64) error {
	if f.ReplaceLocationsFn != nil {
		return f.ReplaceLocationsFn(ctx, departmentID, locationIDs)
	}
	return nil
}

func (f *DepartmentRepo) FilterExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if f.FilterExistingIDsFn != nil {
		return f.FilterExistingIDsFn(ctx, ids)
	}
	return ids, nil
}

func (f *DepartmentRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type DoctorRepo struct {
	CreateFn                 func(ctx context.Context, doctor *model.Doctor, departmentIDs []int64, specializations []string) error
	GetFn                    func(ctx context.Context, id int64) (*model.Doctor, error)
	GetByNameFn              func(ctx context.Context, name string) (*model.Doctor, error)
	UpdateFn                 func(ctx context.Context, id int64, req *model.UpdateDoctorRequest) error
	DeleteFn                 func(ctx context.Context, id int64) error
	ListFn                   func(ctx context.Context, params model.ListParams) ([]*model.Doctor, int64, error)
	ReplaceDepartmentsFn     func(ctx context.Context, doctorID int64, departmentIDs []int64) error
	ReplaceSpecializationsFn func(ctx context.Context, doctorID int64, specializations []string) error
	SearchByNameFn           func(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error)
	SearchBySpecializationFn func(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error)
	CountFn                  func(ctx context.Context) (int64, error)
}

func (f *DoctorRepo) Create(ctx context.Context, doctor *model.Doctor, departmentIDs []int64, specializations []string) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, doctor, departmentIDs, specializations)
	}
	return nil
}

func (f *DoctorRepo) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &model.Doctor{ID: id}, nil
}

func (f *DoctorRepo) GetByName(ctx context.Context, name string) (*model.Doctor, error) {
	if f.GetByNameFn != nil {
		return f.GetByNameFn(ctx, name)
	}
	return &model.Doctor{Name: name}, nil
}

func (f *DoctorRepo) Update(ctx context.Context, id int64, req *model.UpdateDoctorRequest) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil
}

func (f *DoctorRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *DoctorRepo) List(ctx context.Context, params model.ListParams) ([]*model.Doctor, int64, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *DoctorRepo) ReplaceDepartments(ctx context.Context, doctorID int64, departmentIDs []int64) error {
	if f.ReplaceDepartmentsFn != nil {
		return f.ReplaceDepartmentsFn(ctx, doctorID, departmentIDs)
	}
	return nil
}

func (f *DoctorRepo) ReplaceSpecializations(ctx context.Context, doctorID int64, specializations []string) error {
	if f.ReplaceSpecializationsFn != nil {
		return f.ReplaceSpecializationsFn(ctx, doctorID, specializations)
	}
	return nil
}

func (f *DoctorRepo) SearchByName(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	if f.SearchByNameFn != nil {
		return f.SearchByNameFn(ctx, filters)
	}
	return nil, nil
}

func (f *DoctorRepo) SearchBySpecialization(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.Doctor, error) {
	if f.SearchBySpecializationFn != nil {
		return f.SearchBySpecializationFn(ctx, filters)
	}
	return nil, nil
}

func (f *DoctorRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type AppointmentRepo struct {
	CreateFn        func(ctx context.Context, appointment *model.Appointment) error
	GetFn           func(ctx context.Context, id int64) (*model.Appointment, error)
	UpdateFn        func(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) error
	DeleteFn        func(ctx context.Context, id int64) error
	ListFn          func(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, int64, error)
	CountFn         func(ctx context.Context) (int64, error)
	CountByStatusFn func(ctx context.Context) (map[string]int64, error)
}

func (f *AppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, appointment)
	}
	return nil
}

func (f *AppointmentRepo) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &model.Appointment{ID: id}, nil
}

func (f *AppointmentRepo) Update(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil
}

func (f *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *AppointmentRepo) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, int64, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filters)
	}
	return nil, 0, nil
}

func (f *AppointmentRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

func (f *AppointmentRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if f.CountByStatusFn != nil {
		return f.CountByStatusFn(ctx)
	}
	return map[string]int64{}, nil
}

type PackageRepo struct {
	CreateFn func(ctx context.Context, pkg *model.Package, tests []model.TestInput) error
	GetFn    func(ctx context.Context, id int64) (*model.Package, error)
	UpdateFn func(ctx context.Context, id int64, req *model.UpdatePackageRequest) error
	DeleteFn func(ctx context.Context, id int64) error
	ListFn   func(ctx context.Context, activeOnly bool, params model.ListParams) ([]*model.Package, int64, error)
	CountFn  func(ctx context.Context) (int64, error)
}

func (f *PackageRepo) Create(ctx context.Context, pkg *model.Package, tests []model.TestInput) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, pkg, tests)
	}
	return nil
}

func (f *PackageRepo) Get(ctx context.Context, id int64) (*model.Package, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &model.Package{ID: id}, nil
}

func (f *PackageRepo) Update(ctx context.Context, id int64, req *model.UpdatePackageRequest) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil
}

func (f *PackageRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *PackageRepo) List(ctx context.Context, activeOnly bool, params model.ListParams) ([]*model.Package, int64, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, activeOnly, params)
	}
	return nil, 0, nil
}

func (f *PackageRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type BannerRepo struct {
	CreateFn func(ctx context.Context, banner *model.Banner) error
	GetFn    func(ctx context.Context, id int64) (*model.Banner, error)
	UpdateFn func(ctx context.Context, id int64, req *model.UpdateBannerRequest) error
	DeleteFn func(ctx context.Context, id int64) error
	ListFn   func(ctx context.Context, activeOnly bool) ([]*model.Banner, error)
}

func (f *BannerRepo) Create(ctx context.Context, banner *model.Banner) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, banner)
	}
	return nil
}

func (f *BannerRepo) Get(ctx context.Context, id int64) (*model.Banner, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &model.Banner{ID: id}, nil
}

func (f *BannerRepo) Update(ctx context.Context, id int64, req *model.UpdateBannerRequest) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil
}

func (f *BannerRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *BannerRepo) List(ctx context.Context, activeOnly bool) ([]*model.Banner, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, activeOnly)
	}
	return nil, nil
}

type ContactRepo struct {
	CreateFn func(ctx context.Context, contact *model.Contact) error
	GetFn    func(ctx context.Context, id int64) (*model.Contact, error)
	UpdateFn func(ctx context.Context, id int64, req *model.UpdateContactRequest) error
	DeleteFn func(ctx context.Context, id int64) error
	ListFn   func(ctx context.Context, activeOnly bool) ([]*model.Contact, error)
}

func (f *ContactRepo) Create(ctx context.Context, contact *model.Contact) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, contact)
	}
	return nil
}

func (f *ContactRepo) Get(ctx context.Context, id int64) (*model.Contact, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &model.Contact{ID: id}, nil
}

func (f *ContactRepo) Update(ctx context.Context, id int64, req *model.UpdateContactRequest) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil
}

func (f *ContactRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *ContactRepo) List(ctx context.Context, activeOnly bool) ([]*model.Contact, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, activeOnly)
	}
	return nil, nil
}
