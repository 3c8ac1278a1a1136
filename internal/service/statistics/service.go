package statistics

import (
	"context"
	"fmt"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type StatisticsServicer interface {
	DashboardStatistics(ctx context.Context) (*model.DashboardStatistics, error)
}

type Service struct {
	appointments repository.AppointmentRepository
	locations    repository.LocationRepository
	departments  repository.DepartmentRepository
	doctors      repository.DoctorRepository
	packages     repository.PackageRepository
}

func NewService(
	appointments repository.AppointmentRepository,
	locations repository.LocationRepository,
	departments repository.DepartmentRepository,
	doctors repository.DoctorRepository,
	packages repository.PackageRepository,
) *Service {
	return &Service{
		appointments: appointments,
		locations:    locations,
		departments:  departments,
		doctors:      doctors,
		packages:     packages,
	}
}

func (s *Service) DashboardStatistics(ctx context.Context) (*model.DashboardStatistics, error) {
	stats := &model.DashboardStatistics{}

	byStatus, err := s.appointments.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments by status: %w", err)
	}
	stats.AppointmentsByStatus = byStatus
	for _, count := range byStatus {
		stats.TotalAppointments += count
	}

	if stats.LocationsCount, err = s.locations.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count locations: %w", err)
	}
	if stats.DepartmentsCount, err = s.departments.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}
	if stats.ActiveDoctorsCount, err = s.doctors.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	if stats.PackagesCount, err = s.packages.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count packages: %w", err)
	}
	return stats, nil
}
