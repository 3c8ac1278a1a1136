package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository/repositorytest"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

type recordingNotifier struct {
	notified []*model.Appointment
}

func (n *recordingNotifier) NotifyAppointment(a *model.Appointment) {
	n.notified = append(n.notified, a)
}

func newTestService(
	appointments *repositorytest.AppointmentRepo,
	locations *repositorytest.LocationRepo,
	departments *repositorytest.DepartmentRepo,
	doctors *repositorytest.DoctorRepo,
	packages *repositorytest.PackageRepo,
	notifier Notifier,
) *Service {
	return NewService(appointments, locations, departments, doctors, packages, notifier, zerolog.Nop())
}

func visitRequest() *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		FullName:       "Asha Verma",
		MobileNumber:   "+919812345678",
		Location:       "Downtown",
		ReasonForVisit: "Chest pain",
		Message:        "Morning slot preferred",
	}
}

func TestCreateAppointmentResolvesNames(t *testing.T) {
	var created *model.Appointment
	appointments := &repositorytest.AppointmentRepo{
		CreateFn: func(_ context.Context, a *model.Appointment) error {
			a.ID = 11
			created = a
			return nil
		},
	}
	locations := &repositorytest.LocationRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Location, error) {
			require.Equal(t, "Downtown", name)
			return &model.Location{ID: 4, Name: name}, nil
		},
	}
	departments := &repositorytest.DepartmentRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Department, error) {
			return &model.Department{ID: 6, Name: name}, nil
		},
	}
	doctors := &repositorytest.DoctorRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Doctor, error) {
			return &model.Doctor{ID: 9, Name: name}, nil
		},
	}

	svc := newTestService(appointments, locations, departments, doctors, &repositorytest.PackageRepo{}, nil)
	req := visitRequest()
	req.Department = "Cardiology"
	req.Doctor = "Dr. Shah"
	_, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, created.LocationID)
	assert.Equal(t, int64(4), *created.LocationID)
	require.NotNil(t, created.DepartmentID)
	assert.Equal(t, int64(6), *created.DepartmentID)
	require.NotNil(t, created.DoctorID)
	assert.Equal(t, int64(9), *created.DoctorID)
	assert.Equal(t, model.AppointmentTypeNormal, created.Type)
	assert.Equal(t, model.AppointmentPending, created.Status)
}

func TestCreateAppointmentRequiresVisitFields(t *testing.T) {
	svc := newTestService(&repositorytest.AppointmentRepo{}, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)

	cases := map[string]*model.CreateAppointmentRequest{
		"all missing": {FullName: "Asha Verma", MobileNumber: "+919812345678"},
		"no location": {FullName: "Asha Verma", MobileNumber: "+919812345678", ReasonForVisit: "Chest pain", Message: "Morning"},
		"no reason":   {FullName: "Asha Verma", MobileNumber: "+919812345678", Location: "Downtown", Message: "Morning"},
		"no message":  {FullName: "Asha Verma", MobileNumber: "+919812345678", Location: "Downtown", ReasonForVisit: "Chest pain"},
	}
	for name, req := range cases {
		_, err := svc.CreateAppointment(context.Background(), req)
		assert.True(t, apperrors.IsValidation(err), name)
	}
}

func TestCreateAppointmentRejectsUnknownLocation(t *testing.T) {
	locations := &repositorytest.LocationRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Location, error) {
			return nil, apperrors.NewNotFound("location", nil)
		},
	}

	svc := newTestService(&repositorytest.AppointmentRepo{}, locations, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)
	req := visitRequest()
	req.Location = "Nowhere"
	_, err := svc.CreateAppointment(context.Background(), req)
	assert.True(t, apperrors.IsReferential(err))
}

func TestCreateAppointmentDropsUnknownNames(t *testing.T) {
	var created *model.Appointment
	appointments := &repositorytest.AppointmentRepo{
		CreateFn: func(_ context.Context, a *model.Appointment) error {
			created = a
			return nil
		},
	}
	locations := &repositorytest.LocationRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Location, error) {
			return &model.Location{ID: 4, Name: name}, nil
		},
	}
	departments := &repositorytest.DepartmentRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Department, error) {
			return nil, apperrors.NewNotFound("department", nil)
		},
	}
	doctors := &repositorytest.DoctorRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Doctor, error) {
			return nil, apperrors.NewNotFound("doctor", nil)
		},
	}

	svc := newTestService(appointments, locations, departments, doctors, &repositorytest.PackageRepo{}, nil)
	req := visitRequest()
	req.Department = "Astrology"
	req.Doctor = "Dr. Unknown"
	_, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, created.LocationID)
	assert.Nil(t, created.DepartmentID)
	assert.Nil(t, created.DoctorID)
}

func TestCreateAppointmentWithPackage(t *testing.T) {
	var created *model.Appointment
	appointments := &repositorytest.AppointmentRepo{
		CreateFn: func(_ context.Context, a *model.Appointment) error {
			created = a
			return nil
		},
	}
	packages := &repositorytest.PackageRepo{
		GetFn: func(_ context.Context, id int64) (*model.Package, error) {
			return &model.Package{ID: id, Name: "Full Body"}, nil
		},
	}
	departments := &repositorytest.DepartmentRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Department, error) {
			t.Fatal("package bookings must not resolve departments")
			return nil, nil
		},
	}

	pkgID := int64(5)
	svc := newTestService(appointments, &repositorytest.LocationRepo{}, departments, &repositorytest.DoctorRepo{}, packages, nil)
	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		FullName:     "Asha Verma",
		MobileNumber: "+919812345678",
		Department:   "Cardiology",
		Doctor:       "Dr. Shah",
		Notes:        "wheelchair access needed",
		PackageID:    &pkgID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentTypePackage, created.Type)
	require.NotNil(t, created.PackageID)
	assert.Equal(t, pkgID, *created.PackageID)
	assert.Equal(t, "Health Check Package: Full Body", created.ReasonForVisit)
	assert.Equal(t, "wheelchair access needed", created.Message)
	assert.Nil(t, created.DepartmentID)
	assert.Nil(t, created.DoctorID)
}

func TestCreatePackageBookingResolvesOptionalLocation(t *testing.T) {
	var created *model.Appointment
	appointments := &repositorytest.AppointmentRepo{
		CreateFn: func(_ context.Context, a *model.Appointment) error {
			created = a
			return nil
		},
	}
	locations := &repositorytest.LocationRepo{
		GetByNameFn: func(_ context.Context, name string) (*model.Location, error) {
			return nil, apperrors.NewNotFound("location", nil)
		},
	}

	pkgID := int64(5)
	svc := newTestService(appointments, locations, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)
	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		FullName:     "Asha Verma",
		MobileNumber: "+919812345678",
		Location:     "Nowhere",
		PackageID:    &pkgID,
	})
	require.NoError(t, err)
	assert.Nil(t, created.LocationID)
}

func TestCreateAppointmentRejectsUnknownPackage(t *testing.T) {
	packages := &repositorytest.PackageRepo{
		GetFn: func(_ context.Context, id int64) (*model.Package, error) {
			return nil, apperrors.NewNotFound("package", nil)
		},
	}

	pkgID := int64(404)
	svc := newTestService(&repositorytest.AppointmentRepo{}, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, packages, nil)
	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		FullName:     "Asha Verma",
		MobileNumber: "+919812345678",
		PackageID:    &pkgID,
	})
	assert.True(t, apperrors.IsReferential(err))
}

func TestCreateAppointmentParsesPreferredDate(t *testing.T) {
	var created *model.Appointment
	appointments := &repositorytest.AppointmentRepo{
		CreateFn: func(_ context.Context, a *model.Appointment) error {
			created = a
			return nil
		},
	}

	svc := newTestService(appointments, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)
	req := visitRequest()
	req.PreferredDate = "2026-09-15"
	_, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, created.PreferredDate)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *created.PreferredDate)
}

func TestCreateAppointmentRejectsBadDate(t *testing.T) {
	svc := newTestService(&repositorytest.AppointmentRepo{}, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)
	req := visitRequest()
	req.PreferredDate = "15/09/2026"
	_, err := svc.CreateAppointment(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateAppointmentNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(&repositorytest.AppointmentRepo{}, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, notifier)
	_, err := svc.CreateAppointment(context.Background(), visitRequest())
	require.NoError(t, err)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, "Asha Verma", notifier.notified[0].FullName)
}

func TestUpdateAppointmentRejectsBadStatus(t *testing.T) {
	svc := newTestService(&repositorytest.AppointmentRepo{}, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)
	bad := model.AppointmentStatus("archived")
	_, err := svc.UpdateAppointment(context.Background(), 1, &model.UpdateAppointmentRequest{Status: &bad})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateAppointmentClearsPreferredDate(t *testing.T) {
	var forwarded *model.UpdateAppointmentRequest
	appointments := &repositorytest.AppointmentRepo{
		UpdateFn: func(_ context.Context, _ int64, req *model.UpdateAppointmentRequest) error {
			forwarded = req
			return nil
		},
	}

	svc := newTestService(appointments, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)
	_, err := svc.UpdateAppointment(context.Background(), 1, &model.UpdateAppointmentRequest{
		PreferredDate: model.Null[string](),
	})
	require.NoError(t, err)
	require.NotNil(t, forwarded)
	assert.True(t, forwarded.PreferredDate.Set)
	assert.Nil(t, forwarded.PreferredDate.Value)
}

func TestListAppointmentsRejectsBadStatusFilter(t *testing.T) {
	svc := newTestService(&repositorytest.AppointmentRepo{}, &repositorytest.LocationRepo{}, &repositorytest.DepartmentRepo{}, &repositorytest.DoctorRepo{}, &repositorytest.PackageRepo{}, nil)
	_, _, err := svc.ListAppointments(context.Background(), &model.AppointmentFilters{Status: "weird"})
	assert.True(t, apperrors.IsValidation(err))
}
