package packages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository/repositorytest"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

func TestCreatePackagePassesTests(t *testing.T) {
	var gotTests []model.TestInput
	repo := &repositorytest.PackageRepo{
		CreateFn: func(_ context.Context, pkg *model.Package, tests []model.TestInput) error {
			pkg.ID = 2
			gotTests = tests
			return nil
		},
	}

	svc := NewService(repo)
	_, err := svc.CreatePackage(context.Background(), &model.CreatePackageRequest{
		Name:  "Full Body Checkup",
		Price: 2999,
		Tests: []model.TestInput{
			{Name: "CBC", Category: "Blood"},
			{Name: "Lipid Profile", Category: "Blood"},
		},
	})
	require.NoError(t, err)
	require.Len(t, gotTests, 2)
	assert.Equal(t, "CBC", gotTests[0].Name)
}

func TestCreatePackageRejectsDiscountAbovePrice(t *testing.T) {
	svc := NewService(&repositorytest.PackageRepo{})
	discount := 3500.0
	_, err := svc.CreatePackage(context.Background(), &model.CreatePackageRequest{
		Name:          "Full Body Checkup",
		Price:         2999,
		DiscountPrice: &discount,
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdatePackageRejectsDiscountAbovePrice(t *testing.T) {
	svc := NewService(&repositorytest.PackageRepo{})
	price := 1000.0
	_, err := svc.UpdatePackage(context.Background(), 1, &model.UpdatePackageRequest{
		Price:         &price,
		DiscountPrice: model.Some(1000.0),
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdatePackageChecksDiscountAgainstStoredPrice(t *testing.T) {
	repo := &repositorytest.PackageRepo{
		GetFn: func(_ context.Context, id int64) (*model.Package, error) {
			return &model.Package{ID: id, Price: 2000}, nil
		},
	}

	svc := NewService(repo)
	_, err := svc.UpdatePackage(context.Background(), 1, &model.UpdatePackageRequest{
		DiscountPrice: model.Some(2500.0),
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpdatePackage(context.Background(), 1, &model.UpdatePackageRequest{
		DiscountPrice: model.Some(1500.0),
	})
	assert.NoError(t, err)
}

func TestUpdatePackageChecksStoredDiscountAgainstNewPrice(t *testing.T) {
	stored := 1500.0
	repo := &repositorytest.PackageRepo{
		GetFn: func(_ context.Context, id int64) (*model.Package, error) {
			return &model.Package{ID: id, Price: 2000, DiscountPrice: &stored}, nil
		},
	}

	svc := NewService(repo)
	price := 1200.0
	_, err := svc.UpdatePackage(context.Background(), 1, &model.UpdatePackageRequest{Price: &price})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdatePackageClearsDiscountWithExplicitNull(t *testing.T) {
	var forwarded *model.UpdatePackageRequest
	repo := &repositorytest.PackageRepo{
		UpdateFn: func(_ context.Context, _ int64, req *model.UpdatePackageRequest) error {
			forwarded = req
			return nil
		},
	}

	svc := NewService(repo)
	_, err := svc.UpdatePackage(context.Background(), 1, &model.UpdatePackageRequest{
		DiscountPrice: model.Null[float64](),
	})
	require.NoError(t, err)
	require.NotNil(t, forwarded)
	assert.True(t, forwarded.DiscountPrice.Set)
	assert.Nil(t, forwarded.DiscountPrice.Value)
}

func TestUpdatePackageForwardsTestReplacement(t *testing.T) {
	var forwarded *model.UpdatePackageRequest
	repo := &repositorytest.PackageRepo{
		UpdateFn: func(_ context.Context, _ int64, req *model.UpdatePackageRequest) error {
			forwarded = req
			return nil
		},
	}

	svc := NewService(repo)
	tests := []model.TestInput{{Name: "TSH"}}
	_, err := svc.UpdatePackage(context.Background(), 1, &model.UpdatePackageRequest{Tests: &tests})
	require.NoError(t, err)
	require.NotNil(t, forwarded.Tests)
	assert.Equal(t, "TSH", (*forwarded.Tests)[0].Name)
}
