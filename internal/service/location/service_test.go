package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository/repositorytest"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

func TestCreateLocationMapsFields(t *testing.T) {
	var created *model.Location
	repo := &repositorytest.LocationRepo{
		CreateFn: func(_ context.Context, location *model.Location) error {
			location.ID = 1
			created = location
			return nil
		},
	}

	svc := NewService(repo)
	got, err := svc.CreateLocation(context.Background(), &model.CreateLocationRequest{
		Name:    "Downtown",
		Address: "12 Main Road",
		Phone:   "+919812345678",
		Email:   "downtown@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Downtown", created.Name)
	assert.Equal(t, "+919812345678", created.Phone)
}

func TestCreateLocationDuplicateName(t *testing.T) {
	repo := &repositorytest.LocationRepo{
		CreateFn: func(context.Context, *model.Location) error {
			return apperrors.NewConflict("location already exists", nil)
		},
	}

	svc := NewService(repo)
	_, err := svc.CreateLocation(context.Background(), &model.CreateLocationRequest{
		Name:    "Downtown",
		Address: "12 Main Road",
		Phone:   "+919812345678",
		Email:   "downtown@example.com",
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestListLocationsPublicHidesDisabled(t *testing.T) {
	var gotEnabledOnly bool
	repo := &repositorytest.LocationRepo{
		ListFn: func(_ context.Context, enabledOnly bool) ([]*model.Location, error) {
			gotEnabledOnly = enabledOnly
			return nil, nil
		},
	}

	svc := NewService(repo)
	_, err := svc.ListLocations(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, gotEnabledOnly)

	_, err = svc.ListLocations(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, gotEnabledOnly)
}
