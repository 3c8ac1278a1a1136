package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository/repositorytest"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

func TestCreateDoctorFiltersUnknownDepartments(t *testing.T) {
	var linked []int64
	doctors := &repositorytest.DoctorRepo{
		CreateFn: func(_ context.Context, doctor *model.Doctor, departmentIDs []int64, _ []string) error {
			doctor.ID = 7
			linked = departmentIDs
			return nil
		},
	}
	departments := &repositorytest.DepartmentRepo{
		FilterExistingIDsFn: func(_ context.Context, ids []int64) ([]int64, error) {
			var valid []int64
			for _, id := range ids {
				if id == 1 || id == 3 {
					valid = append(valid, id)
				}
			}
			return valid, nil
		},
	}

	svc := NewService(doctors, departments)
	_, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:        "Dr. Rao",
		LocationID:  1,
		Departments: []int64{1, 99, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, linked)
}

func TestCreateDoctorDefaultsAvailability(t *testing.T) {
	var created *model.Doctor
	doctors := &repositorytest.DoctorRepo{
		CreateFn: func(_ context.Context, doctor *model.Doctor, _ []int64, _ []string) error {
			created = doctor
			return nil
		},
	}

	svc := NewService(doctors, &repositorytest.DepartmentRepo{})
	_, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{Name: "Dr. Rao", LocationID: 1})
	require.NoError(t, err)
	assert.Equal(t, model.DoctorAvailable, created.Availability)
}

func TestCreateDoctorRejectsBadAvailability(t *testing.T) {
	svc := NewService(&repositorytest.DoctorRepo{}, &repositorytest.DepartmentRepo{})
	_, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:         "Dr. Rao",
		LocationID:   1,
		Availability: "retired",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateDoctorReplacesDepartmentsWithValidOnly(t *testing.T) {
	var updated *model.UpdateDoctorRequest
	doctors := &repositorytest.DoctorRepo{
		UpdateFn: func(_ context.Context, _ int64, req *model.UpdateDoctorRequest) error {
			updated = req
			return nil
		},
	}
	departments := &repositorytest.DepartmentRepo{
		FilterExistingIDsFn: func(_ context.Context, ids []int64) ([]int64, error) {
			return []int64{2}, nil
		},
	}

	svc := NewService(doctors, departments)
	req := &model.UpdateDoctorRequest{Departments: &[]int64{2, 42}}
	_, err := svc.UpdateDoctor(context.Background(), 5, req)
	require.NoError(t, err)
	require.NotNil(t, updated.Departments)
	assert.Equal(t, []int64{2}, *updated.Departments)
}

func TestUpdateDoctorDepartmentReplacementIsIdempotent(t *testing.T) {
	// Junction rows keyed by (doctor_id, department_id). Replacement is
	// delete-all-then-insert, so repeating the same call must not change
	// the final set.
	junction := map[[2]int64]bool{
		{5, 9}: true,
	}
	doctors := &repositorytest.DoctorRepo{
		UpdateFn: func(_ context.Context, id int64, req *model.UpdateDoctorRequest) error {
			if req.Departments == nil {
				return nil
			}
			for key := range junction {
				if key[0] == id {
					delete(junction, key)
				}
			}
			for _, departmentID := range *req.Departments {
				junction[[2]int64{id, departmentID}] = true
			}
			return nil
		},
	}

	svc := NewService(doctors, &repositorytest.DepartmentRepo{})
	target := []int64{2, 3}

	_, err := svc.UpdateDoctor(context.Background(), 5, &model.UpdateDoctorRequest{Departments: &target})
	require.NoError(t, err)
	afterFirst := map[[2]int64]bool{}
	for key := range junction {
		afterFirst[key] = true
	}

	_, err = svc.UpdateDoctor(context.Background(), 5, &model.UpdateDoctorRequest{Departments: &target})
	require.NoError(t, err)

	want := map[[2]int64]bool{{5, 2}: true, {5, 3}: true}
	assert.Equal(t, want, afterFirst)
	assert.Equal(t, want, junction)
}

func TestSearchDoctorsMergesWithoutDuplicates(t *testing.T) {
	byName := []*model.Doctor{{ID: 1, Name: "Dr. Cardio"}, {ID: 2, Name: "Dr. Carter"}}
	bySpec := []*model.Doctor{{ID: 2, Name: "Dr. Carter"}, {ID: 3, Name: "Dr. Shah"}}
	doctors := &repositorytest.DoctorRepo{
		SearchByNameFn: func(_ context.Context, _ *model.DoctorSearchFilters) ([]*model.Doctor, error) {
			return byName, nil
		},
		SearchBySpecializationFn: func(_ context.Context, _ *model.DoctorSearchFilters) ([]*model.Doctor, error) {
			return bySpec, nil
		},
	}

	svc := NewService(doctors, &repositorytest.DepartmentRepo{})
	merged, err := svc.SearchDoctors(context.Background(), &model.DoctorSearchFilters{Query: "car"})
	require.NoError(t, err)

	ids := make([]int64, 0, len(merged))
	for _, d := range merged {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestSearchDoctorsKeepsFirstMatchOrder(t *testing.T) {
	doctors := &repositorytest.DoctorRepo{
		SearchByNameFn: func(_ context.Context, _ *model.DoctorSearchFilters) ([]*model.Doctor, error) {
			return []*model.Doctor{{ID: 9}, {ID: 4}}, nil
		},
		SearchBySpecializationFn: func(_ context.Context, _ *model.DoctorSearchFilters) ([]*model.Doctor, error) {
			return []*model.Doctor{{ID: 4}, {ID: 9}, {ID: 1}}, nil
		},
	}

	svc := NewService(doctors, &repositorytest.DepartmentRepo{})
	merged, err := svc.SearchDoctors(context.Background(), &model.DoctorSearchFilters{Query: "x"})
	require.NoError(t, err)
	require.Len(t, merged, 3)
	assert.Equal(t, int64(9), merged[0].ID)
	assert.Equal(t, int64(4), merged[1].ID)
	assert.Equal(t, int64(1), merged[2].ID)
}
