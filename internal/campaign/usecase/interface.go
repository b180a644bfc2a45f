// Package usecase implements the campaign store, activation into the recipient queue
// and the aggregator that keeps campaign counters and completion in step with the queue.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

// CampaignRepository defines campaign persistence operations.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *campaignDomain.Campaign) error
	Get(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error)
	// Update persists name, subject, content, status and schedule.
	Update(ctx context.Context, campaign *campaignDomain.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter campaignDomain.ListFilter) ([]*campaignDomain.Campaign, int64, error)
	Stats(ctx context.Context) (*campaignDomain.Stats, error)

	AddRecipients(ctx context.Context, campaignID uuid.UUID, contactIDs []uuid.UUID) error
	ListRecipientIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error)

	// ClaimForActivation moves a scheduled or sending campaign that was never enqueued to
	// sending and stamps enqueued_at. It reports false when another caller already claimed it.
	ClaimForActivation(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	SetTotalRecipients(ctx context.Context, id uuid.UUID, total int, now time.Time) error
	// ListDue returns campaigns waiting for activation: scheduled ones whose time has come
	// and sending ones created before staleBefore that were never enqueued.
	ListDue(ctx context.Context, now, staleBefore time.Time, limit int) ([]uuid.UUID, error)
	MarkFailed(ctx context.Context, id uuid.UUID, message string, now time.Time) error

	// IncrementCounters adds to emails_sent/emails_failed unless the campaign is already drained.
	IncrementCounters(ctx context.Context, id uuid.UUID, sent, failed int, now time.Time) (bool, error)
	// CompleteIfDrained marks a sending campaign completed once sent+failed reaches the total.
	CompleteIfDrained(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

// ContactReader resolves recipient ids to contacts, preserving the order of ids.
type ContactReader interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*contactDomain.Contact, error)
}

// RecipientQueue receives the recipient snapshots of an activated campaign.
type RecipientQueue interface {
	Enqueue(ctx context.Context, campaignID uuid.UUID, items []queueDomain.EnqueueItem) error
}

// Aggregator maintains campaign counters and completion.
type Aggregator interface {
	// RecordOutcome folds one task outcome into the campaign. It must run in the
	// same transaction as the task transition.
	RecordOutcome(ctx context.Context, campaignID uuid.UUID, state queueDomain.TaskState) error

	// MarkFailed fails a campaign whose activation could not complete.
	MarkFailed(ctx context.Context, campaignID uuid.UUID, message string) error
}

// CampaignUseCase defines the campaign store operations.
type CampaignUseCase interface {
	Create(ctx context.Context, input campaignDomain.CreateCampaignInput) (*campaignDomain.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error)
	List(ctx context.Context, filter campaignDomain.ListFilter) ([]*campaignDomain.Campaign, int64, error)
	Update(
		ctx context.Context,
		id uuid.UUID,
		input campaignDomain.UpdateCampaignInput,
	) (*campaignDomain.Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error)
	SendNow(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error)
	Stats(ctx context.Context) (*campaignDomain.Stats, error)

	// Activate snapshots the campaign's recipients into the queue. Calling it again for
	// an already activated campaign is a no-op.
	Activate(ctx context.Context, id uuid.UUID) error

	// ActivateDue activates every campaign waiting for activation at now and
	// returns how many were enqueued.
	ActivateDue(ctx context.Context, now time.Time) (int, error)
}
