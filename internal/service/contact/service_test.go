package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository/repositorytest"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

func TestCreateContactMapsType(t *testing.T) {
	var created *model.Contact
	repo := &repositorytest.ContactRepo{
		CreateFn: func(_ context.Context, contact *model.Contact) error {
			contact.ID = 1
			created = contact
			return nil
		},
	}

	svc := NewService(repo)
	_, err := svc.CreateContact(context.Background(), &model.CreateContactRequest{
		ContactType:  "mobile",
		ContactValue: "+919812345678",
		Description:  "Helpline",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContactMobile, created.ContactType)
}

func TestUpdateContactRejectsBadType(t *testing.T) {
	svc := NewService(&repositorytest.ContactRepo{})
	bad := "fax"
	_, err := svc.UpdateContact(context.Background(), 1, &model.UpdateContactRequest{ContactType: &bad})
	assert.True(t, apperrors.IsValidation(err))
}
