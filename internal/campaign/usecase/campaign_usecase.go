package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	"github.com/allisson/leadmail/internal/database"
	apperrors "github.com/allisson/leadmail/internal/errors"
)

// Config holds campaign use case configuration.
type Config struct {
	// ActivationGracePeriod is how long a sending campaign may stay unenqueued before
	// ActivateDue re-drives its activation.
	ActivationGracePeriod time.Duration
	ActivationBatchSize   int
}

type campaignUseCase struct {
	config       Config
	txManager    database.TxManager
	campaignRepo CampaignRepository
	contacts     ContactReader
	queue        RecipientQueue
	aggregator   Aggregator
	logger       *slog.Logger
	now          func() time.Time
}

// NewCampaignUseCase creates a new CampaignUseCase.
func NewCampaignUseCase(
	config Config,
	txManager database.TxManager,
	campaignRepo CampaignRepository,
	contacts ContactReader,
	queue RecipientQueue,
	aggregator Aggregator,
	logger *slog.Logger,
) CampaignUseCase {
	if config.ActivationBatchSize <= 0 {
		config.ActivationBatchSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &campaignUseCase{
		config:       config,
		txManager:    txManager,
		campaignRepo: campaignRepo,
		contacts:     contacts,
		queue:        queue,
		aggregator:   aggregator,
		logger:       logger,
		now:          time.Now,
	}
}

func (u *campaignUseCase) Create(
	ctx context.Context,
	input campaignDomain.CreateCampaignInput,
) (*campaignDomain.Campaign, error) {
	if err := u.validateRecipients(ctx, input.RecipientIDs); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	campaign := &campaignDomain.Campaign{
		ID:              uuid.Must(uuid.NewV7()),
		Name:            strings.TrimSpace(input.Name),
		Subject:         input.Subject,
		Content:         input.Content,
		TotalRecipients: len(input.RecipientIDs),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	switch {
	case input.Draft:
		campaign.Status = campaignDomain.StatusDraft
		campaign.ScheduledAt = utcPtr(input.ScheduledAt)
	case input.ScheduledAt != nil && input.ScheduledAt.After(now):
		campaign.Status = campaignDomain.StatusScheduled
		campaign.ScheduledAt = utcPtr(input.ScheduledAt)
	default:
		campaign.Status = campaignDomain.StatusSending
	}

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.campaignRepo.Create(ctx, campaign); err != nil {
			return err
		}
		return u.campaignRepo.AddRecipients(ctx, campaign.ID, input.RecipientIDs)
	})
	if err != nil {
		return nil, err
	}

	if campaign.Status != campaignDomain.StatusSending {
		return campaign, nil
	}

	// Activation failures leave the campaign in status failed; the caller sees that
	// through the returned campaign rather than an error.
	_ = u.Activate(ctx, campaign.ID)
	return u.campaignRepo.Get(ctx, campaign.ID)
}

func (u *campaignUseCase) validateRecipients(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return campaignDomain.ErrNoRecipients
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return apperrors.Wrapf(campaignDomain.ErrDuplicateRecipients, "duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}

	contacts, err := u.contacts.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(contacts) == len(ids) {
		return nil
	}

	for _, c := range contacts {
		delete(seen, c.ID)
	}
	missing := make([]string, 0, len(seen))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			missing = append(missing, id.String())
		}
	}
	return apperrors.Wrapf(campaignDomain.ErrRecipientsNotFound, "missing: %s", strings.Join(missing, ", "))
}

func (u *campaignUseCase) Get(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	return u.campaignRepo.Get(ctx, id)
}

func (u *campaignUseCase) List(
	ctx context.Context,
	filter campaignDomain.ListFilter,
) ([]*campaignDomain.Campaign, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.SortBy == "" {
		filter.SortBy = campaignDomain.SortByCreatedAt
		filter.SortDesc = true
	}
	return u.campaignRepo.List(ctx, filter)
}

func (u *campaignUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input campaignDomain.UpdateCampaignInput,
) (*campaignDomain.Campaign, error) {
	var updated *campaignDomain.Campaign

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		campaign, err := u.campaignRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !campaign.Status.IsEditable() {
			return campaignDomain.ErrCampaignNotEditable
		}

		if input.Name != nil {
			campaign.Name = strings.TrimSpace(*input.Name)
		}
		if input.Subject != nil {
			campaign.Subject = *input.Subject
		}
		if input.Content != nil {
			campaign.Content = *input.Content
		}
		switch {
		case input.ClearSchedule:
			campaign.ScheduledAt = nil
			campaign.Status = campaignDomain.StatusDraft
		case input.ScheduledAt != nil:
			campaign.ScheduledAt = utcPtr(input.ScheduledAt)
			campaign.Status = campaignDomain.StatusScheduled
		}
		campaign.UpdatedAt = u.now().UTC()

		if err := u.campaignRepo.Update(ctx, campaign); err != nil {
			return err
		}
		updated = campaign
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *campaignUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.txManager.WithTx(ctx, func(ctx context.Context) error {
		campaign, err := u.campaignRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if campaign.Status == campaignDomain.StatusSending {
			return campaignDomain.ErrCampaignSending
		}
		return u.campaignRepo.Delete(ctx, id)
	})
}

func (u *campaignUseCase) Cancel(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	var cancelled *campaignDomain.Campaign

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		campaign, err := u.campaignRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !campaign.Status.CanTransitionTo(campaignDomain.StatusCancelled) {
			return campaignDomain.ErrCampaignNotCancellable
		}

		campaign.Status = campaignDomain.StatusCancelled
		campaign.UpdatedAt = u.now().UTC()
		if err := u.campaignRepo.Update(ctx, campaign); err != nil {
			return err
		}
		cancelled = campaign
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (u *campaignUseCase) SendNow(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		campaign, err := u.campaignRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !campaign.Status.IsEditable() {
			return campaignDomain.ErrCampaignNotEditable
		}

		campaign.Status = campaignDomain.StatusSending
		campaign.UpdatedAt = u.now().UTC()
		return u.campaignRepo.Update(ctx, campaign)
	})
	if err != nil {
		return nil, err
	}

	_ = u.Activate(ctx, id)
	return u.campaignRepo.Get(ctx, id)
}

func (u *campaignUseCase) Stats(ctx context.Context) (*campaignDomain.Stats, error) {
	stats, err := u.campaignRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if stats.ByStatus == nil {
		stats.ByStatus = make(map[campaignDomain.Status]int64, len(campaignDomain.Statuses))
	}
	for _, status := range campaignDomain.Statuses {
		if _, ok := stats.ByStatus[status]; !ok {
			stats.ByStatus[status] = 0
		}
	}
	stats.SuccessRate = percentage(stats.TotalEmailsSent, stats.TotalEmailsSent+stats.TotalEmailsFailed)
	return stats, nil
}

// percentage returns part/whole as a percentage rounded to two decimals, or 0 when whole is 0.
func percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
