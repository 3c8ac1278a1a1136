package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/repository"
)

type contactRepository struct {
	BaseRepository
}

func NewContactRepository(db *sqlx.DB) repository.ContactRepository {
	return &contactRepository{NewBaseRepository(db)}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	query := `
		INSERT INTO contacts (contact_type, contact_value, description)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		contact.ContactType,
		contact.ContactValue,
		contact.Description,
	).Scan(&contact.ID, &contact.IsActive, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", mapError(err, "contact"))
	}
	return nil
}

func (r *contactRepository) Get(ctx context.Context, id int64) (*model.Contact, error) {
	query := `
		SELECT id, contact_type, contact_value, description, is_active, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`
	var contact model.Contact
	if err := r.db.GetContext(ctx, &contact, query, id); err != nil {
		return nil, mapError(err, "contact")
	}
	return &contact, nil
}

func (r *contactRepository) Update(ctx context.Context, id int64, req *model.UpdateContactRequest) error {
	var set updateSet
	if req.ContactType != nil {
		set.add("contact_type", *req.ContactType)
	}
	if req.ContactValue != nil {
		set.add("contact_value", *req.ContactValue)
	}
	if req.Description != nil {
		set.add("description", *req.Description)
	}
	if req.IsActive != nil {
		set.add("is_active", *req.IsActive)
	}
	if set.empty() {
		_, err := r.Get(ctx, id)
		return err
	}

	clause, args := set.clause(1)
	query := fmt.Sprintf("UPDATE contacts SET %s WHERE id = $%d", clause, len(args)+1)
	res, err := r.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return rowsAffected(res, "contact")
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return rowsAffected(res, "contact")
}

func (r *contactRepository) List(ctx context.Context, activeOnly bool) ([]*model.Contact, error) {
	query := `
		SELECT id, contact_type, contact_value, description, is_active, created_at, updated_at
		FROM contacts
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY created_at DESC"

	contacts := []*model.Contact{}
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
