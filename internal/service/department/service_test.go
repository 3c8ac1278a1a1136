package department

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository/repositorytest"
)

func TestCreateDepartmentFiltersUnknownLocations(t *testing.T) {
	var linked []int64
	departments := &repositorytest.DepartmentRepo{
		CreateFn: func(_ context.Context, department *model.Department, locationIDs []int64) error {
			department.ID = 3
			linked = locationIDs
			return nil
		},
	}
	locations := &repositorytest.LocationRepo{
		FilterExistingIDsFn: func(_ context.Context, ids []int64) ([]int64, error) {
			return []int64{1, 2}, nil
		},
	}

	svc := NewService(departments, locations)
	_, err := svc.CreateDepartment(context.Background(), &model.CreateDepartmentRequest{
		Name:      "Cardiology",
		Locations: []int64{1, 2, 77},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, linked)
}

func TestUpdateDepartmentLeavesLocationsWhenAbsent(t *testing.T) {
	var updated *model.UpdateDepartmentRequest
	departments := &repositorytest.DepartmentRepo{
		UpdateFn: func(_ context.Context, _ int64, req *model.UpdateDepartmentRequest) error {
			updated = req
			return nil
		},
	}
	filterCalled := false
	locations := &repositorytest.LocationRepo{
		FilterExistingIDsFn: func(_ context.Context, ids []int64) ([]int64, error) {
			filterCalled = true
			return ids, nil
		},
	}

	svc := NewService(departments, locations)
	name := "Renamed"
	_, err := svc.UpdateDepartment(context.Background(), 3, &model.UpdateDepartmentRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated.Locations)
	assert.False(t, filterCalled)
}

func TestUpdateDepartmentReplacesLocationSet(t *testing.T) {
	var updated *model.UpdateDepartmentRequest
	departments := &repositorytest.DepartmentRepo{
		UpdateFn: func(_ context.Context, _ int64, req *model.UpdateDepartmentRequest) error {
			updated = req
			return nil
		},
	}
	locations := &repositorytest.LocationRepo{
		FilterExistingIDsFn: func(_ context.Context, ids []int64) ([]int64, error) {
			return []int64{5}, nil
		},
	}

	svc := NewService(departments, locations)
	_, err := svc.UpdateDepartment(context.Background(), 3, &model.UpdateDepartmentRequest{
		Locations: &[]int64{5, 999},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Locations)
	assert.Equal(t, []int64{5}, *updated.Locations)
}

func TestUpdateDepartmentLocationReplacementIsIdempotent(t *testing.T) {
	// Junction rows keyed by (department_id, location_id). Replacement is
	// delete-all-then-insert, so two identical calls must land on the same
	// final set as one.
	junction := map[[2]int64]bool{
		{3, 7}: true,
		{3, 8}: true,
	}
	departments := &repositorytest.DepartmentRepo{
		UpdateFn: func(_ context.Context, id int64, req *model.UpdateDepartmentRequest) error {
			if req.Locations == nil {
				return nil
			}
			for key := range junction {
				if key[0] == id {
					delete(junction, key)
				}
			}
			for _, locationID := range *req.Locations {
				junction[[2]int64{id, locationID}] = true
			}
			return nil
		},
	}

	svc := NewService(departments, &repositorytest.LocationRepo{})
	target := []int64{1, 2}

	_, err := svc.UpdateDepartment(context.Background(), 3, &model.UpdateDepartmentRequest{Locations: &target})
	require.NoError(t, err)
	afterFirst := map[[2]int64]bool{}
	for key := range junction {
		afterFirst[key] = true
	}

	_, err = svc.UpdateDepartment(context.Background(), 3, &model.UpdateDepartmentRequest{Locations: &target})
	require.NoError(t, err)

	want := map[[2]int64]bool{{3, 1}: true, {3, 2}: true}
	assert.Equal(t, want, afterFirst)
	assert.Equal(t, want, junction)
}

func TestUpdateDepartmentContentTouchesOnlyContentFields(t *testing.T) {
	var updated *model.UpdateDepartmentRequest
	departments := &repositorytest.DepartmentRepo{
		UpdateFn: func(_ context.Context, _ int64, req *model.UpdateDepartmentRequest) error {
			updated = req
			return nil
		},
	}

	svc := NewService(departments, &repositorytest.LocationRepo{})
	overview := "A long overview"
	_, err := svc.UpdateDepartmentContent(context.Background(), 3, &model.UpdateDepartmentContentRequest{
		Overview: &overview,
	})
	require.NoError(t, err)
	assert.Equal(t, &overview, updated.Overview)
	assert.Nil(t, updated.Name)
	assert.Nil(t, updated.Image)
	assert.Nil(t, updated.Locations)
	assert.Nil(t, updated.IsActive)
}
