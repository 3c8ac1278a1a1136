package contact

import (
	"context"
	"fmt"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

type ContactServicer interface {
	CreateContact(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error)
	GetContact(ctx context.Context, id int64) (*model.Contact, error)
	UpdateContact(ctx context.Context, id int64, req *model.UpdateContactRequest) (*model.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	ListContacts(ctx context.Context, includeInactive bool) ([]*model.Contact, error)
}

type Service struct {
	repo repository.ContactRepository
}

func NewService(repo repository.ContactRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateContact(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		ContactType:  model.ContactType(req.ContactType),
		ContactValue: req.ContactValue,
		Description:  req.Description,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (s *Service) GetContact(ctx context.Context, id int64) (*model.Contact, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateContact(ctx context.Context, id int64, req *model.UpdateContactRequest) (*model.Contact, error) {
	if req.ContactType != nil && !model.ContactType(*req.ContactType).Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid contact type %q", *req.ContactType), nil)
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteContact(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListContacts(ctx context.Context, includeInactive bool) ([]*model.Contact, error) {
	return s.repo.List(ctx, !includeInactive)
}
