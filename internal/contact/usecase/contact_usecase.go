package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
)

type contactUseCase struct {
	contactRepo ContactRepository
}

// NewContactUseCase creates a new ContactUseCase.
func NewContactUseCase(contactRepo ContactRepository) ContactUseCase {
	return &contactUseCase{contactRepo: contactRepo}
}

func (u *contactUseCase) Create(
	ctx context.Context,
	input contactDomain.CreateContactInput,
) (*contactDomain.Contact, error) {
	status := input.Status
	if status == "" {
		status = contactDomain.StatusNew
	}

	now := time.Now().UTC()
	contact := &contactDomain.Contact{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     input.Phone,
		Company:   input.Company,
		Status:    status,
		Notes:     input.Notes,
		Source:    input.Source,
		LeadScore: input.LeadScore,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUseCase) Get(ctx context.Context, id uuid.UUID) (*contactDomain.Contact, error) {
	return u.contactRepo.Get(ctx, id)
}

func (u *contactUseCase) List(
	ctx context.Context,
	filter contactDomain.ListFilter,
) ([]*contactDomain.Contact, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return u.contactRepo.List(ctx, filter)
}

func (u *contactUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input contactDomain.UpdateContactInput,
) (*contactDomain.Contact, error) {
	contact, err := u.contactRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		contact.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		contact.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		contact.Phone = input.Phone
	}
	if input.Company != nil {
		contact.Company = input.Company
	}
	if input.Status != nil {
		contact.Status = *input.Status
	}
	if input.Notes != nil {
		contact.Notes = input.Notes
	}
	if input.Source != nil {
		contact.Source = input.Source
	}
	if input.LeadScore != nil {
		contact.LeadScore = *input.LeadScore
	}
	contact.UpdatedAt = time.Now().UTC()

	if err := u.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.contactRepo.Delete(ctx, id)
}

func (u *contactUseCase) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*contactDomain.Contact, error) {
	if len(ids) == 0 {
		return []*contactDomain.Contact{}, nil
	}

	found, err := u.contactRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*contactDomain.Contact, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	ordered := make([]*contactDomain.Contact, 0, len(found))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

func (u *contactUseCase) TouchLastContacted(ctx context.Context, id uuid.UUID, at time.Time) error {
	return u.contactRepo.TouchLastContacted(ctx, id, at)
}

func (u *contactUseCase) Stats(ctx context.Context) (*contactDomain.Stats, error) {
	counts, err := u.contactRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &contactDomain.Stats{ByStatus: make(map[contactDomain.Status]int64, len(contactDomain.Statuses))}
	for _, status := range contactDomain.Statuses {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}
	return stats, nil
}
