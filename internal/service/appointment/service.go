package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

// Notifier delivers a booking notification. Implementations must not block
// the booking on delivery problems.
type Notifier interface {
	NotifyAppointment(appointment *model.Appointment)
}

type AppointmentServicer interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, int64, error)
}

type Service struct {
	repo        repository.AppointmentRepository
	locations   repository.LocationRepository
	departments repository.DepartmentRepository
	doctors     repository.DoctorRepository
	packages    repository.PackageRepository
	notifier    Notifier
	logger      zerolog.Logger
}

func NewService(
	repo repository.AppointmentRepository,
	locations repository.LocationRepository,
	departments repository.DepartmentRepository,
	doctors repository.DoctorRepository,
	packages repository.PackageRepository,
	notifier Notifier,
	logger zerolog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		locations:   locations,
		departments: departments,
		doctors:     doctors,
		packages:    packages,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateAppointment books either a normal visit or a health-check package.
// A request carrying a package id is a package booking; anything else is a
// normal visit. Each type validates its own required fields.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		FullName:      req.FullName,
		MobileNumber:  req.MobileNumber,
		Email:         req.Email,
		PreferredTime: req.PreferredTime,
		Status:        model.AppointmentPending,
	}

	if req.PreferredDate != "" {
		date, err := time.Parse("2006-01-02", req.PreferredDate)
		if err != nil {
			return nil, apperrors.NewValidation(fmt.Sprintf("invalid preferred_date %q, expected YYYY-MM-DD", req.PreferredDate), nil)
		}
		appointment.PreferredDate = &date
	}

	var err error
	if req.PackageID != nil {
		err = s.shapePackageBooking(ctx, req, appointment)
	} else {
		err = s.shapeVisitBooking(ctx, req, appointment)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyAppointment(appointment)
	}
	return appointment, nil
}

// shapeVisitBooking fills a normal visit. Location, reason and message are
// required and the location name must resolve; department and doctor are
// optional and unknown names are dropped.
func (s *Service) shapeVisitBooking(ctx context.Context, req *model.CreateAppointmentRequest, appointment *model.Appointment) error {
	if req.Location == "" || req.ReasonForVisit == "" || req.Message == "" {
		return apperrors.NewValidation("location, reason_for_visit and message are required for an appointment", nil)
	}

	location, err := s.locations.GetByName(ctx, req.Location)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewReferential("location", err)
		}
		return fmt.Errorf("failed to resolve location: %w", err)
	}

	appointment.Type = model.AppointmentTypeNormal
	appointment.LocationID = &location.ID
	appointment.ReasonForVisit = req.ReasonForVisit
	appointment.Message = req.Message

	if req.Department != "" {
		if department, err := s.departments.GetByName(ctx, req.Department); err == nil {
			appointment.DepartmentID = &department.ID
		} else if !apperrors.IsNotFound(err) {
			s.logger.Warn().Err(err).Str("department", req.Department).Msg("department lookup failed")
		}
	}
	if req.Doctor != "" {
		if doctor, err := s.doctors.GetByName(ctx, req.Doctor); err == nil {
			appointment.DoctorID = &doctor.ID
		} else if !apperrors.IsNotFound(err) {
			s.logger.Warn().Err(err).Str("doctor", req.Doctor).Msg("doctor lookup failed")
		}
	}
	return nil
}

// shapePackageBooking fills a health-check package booking. The package must
// exist; the reason is derived from its name and the message comes from the
// notes field. Location is optional and an unknown name is dropped;
// department and doctor do not apply.
func (s *Service) shapePackageBooking(ctx context.Context, req *model.CreateAppointmentRequest, appointment *model.Appointment) error {
	pkg, err := s.packages.Get(ctx, *req.PackageID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewReferential("package", err)
		}
		return fmt.Errorf("failed to verify package: %w", err)
	}

	appointment.Type = model.AppointmentTypePackage
	appointment.PackageID = req.PackageID
	appointment.ReasonForVisit = "Health Check Package: " + pkg.Name
	appointment.Message = req.Notes

	if req.Location != "" {
		if location, err := s.locations.GetByName(ctx, req.Location); err == nil {
			appointment.LocationID = &location.ID
		} else if !apperrors.IsNotFound(err) {
			s.logger.Warn().Err(err).Str("location", req.Location).Msg("location lookup failed")
		}
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid status %q", *req.Status), nil)
	}
	if req.PreferredDate.Set && req.PreferredDate.Value != nil {
		if _, err := time.Parse("2006-01-02", *req.PreferredDate.Value); err != nil {
			return nil, apperrors.NewValidation(fmt.Sprintf("invalid preferred_date %q, expected YYYY-MM-DD", *req.PreferredDate.Value), nil)
		}
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, int64, error) {
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, apperrors.NewValidation(fmt.Sprintf("invalid status %q", filters.Status), nil)
	}
	return s.repo.List(ctx, filters)
}
