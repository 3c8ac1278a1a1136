package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/repository/repositorytest"
)

func TestDashboardStatisticsAggregates(t *testing.T) {
	appointments := &repositorytest.AppointmentRepo{
		CountByStatusFn: func(context.Context) (map[string]int64, error) {
			return map[string]int64{"pending": 3, "confirmed": 2, "cancelled": 1}, nil
		},
	}
	locations := &repositorytest.LocationRepo{
		CountFn: func(context.Context) (int64, error) { return 4, nil },
	}
	departments := &repositorytest.DepartmentRepo{
		CountFn: func(context.Context) (int64, error) { return 9, nil },
	}
	doctors := &repositorytest.DoctorRepo{
		CountFn: func(context.Context) (int64, error) { return 27, nil },
	}
	packages := &repositorytest.PackageRepo{
		CountFn: func(context.Context) (int64, error) { return 6, nil },
	}

	svc := NewService(appointments, locations, departments, doctors, packages)
	stats, err := svc.DashboardStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalAppointments)
	assert.Equal(t, int64(3), stats.AppointmentsByStatus["pending"])
	assert.Equal(t, int64(4), stats.LocationsCount)
	assert.Equal(t, int64(9), stats.DepartmentsCount)
	assert.Equal(t, int64(27), stats.ActiveDoctorsCount)
	assert.Equal(t, int64(6), stats.PackagesCount)
}
