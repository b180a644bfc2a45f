// Package usecase implements the contact directory consumed by the campaign pipeline.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
)

// ContactRepository defines contact persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *contactDomain.Contact) error
	Update(ctx context.Context, contact *contactDomain.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*contactDomain.Contact, error)
	List(ctx context.Context, filter contactDomain.ListFilter) ([]*contactDomain.Contact, int64, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*contactDomain.Contact, error)
	TouchLastContacted(ctx context.Context, id uuid.UUID, at time.Time) error
	CountByStatus(ctx context.Context) (map[contactDomain.Status]int64, error)
}

// ContactUseCase defines the contact directory operations.
type ContactUseCase interface {
	Create(ctx context.Context, input contactDomain.CreateContactInput) (*contactDomain.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*contactDomain.Contact, error)
	List(ctx context.Context, filter contactDomain.ListFilter) ([]*contactDomain.Contact, int64, error)
	Update(
		ctx context.Context,
		id uuid.UUID,
		input contactDomain.UpdateContactInput,
	) (*contactDomain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByIDs returns the contacts in the order of ids; unknown ids are omitted.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*contactDomain.Contact, error)
	TouchLastContacted(ctx context.Context, id uuid.UUID, at time.Time) error
	// Stats counts contacts per pipeline stage; every stage is present.
	Stats(ctx context.Context) (*contactDomain.Stats, error)
}
