package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

type aggregator struct {
	campaignRepo CampaignRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewAggregator creates the aggregator that owns campaign counters and completion.
func NewAggregator(campaignRepo CampaignRepository, logger *slog.Logger) Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &aggregator{campaignRepo: campaignRepo, logger: logger, now: time.Now}
}

func (a *aggregator) RecordOutcome(ctx context.Context, campaignID uuid.UUID, state queueDomain.TaskState) error {
	var sent, failed int
	switch state {
	case queueDomain.TaskStateSent:
		sent = 1
	case queueDomain.TaskStateFailed, queueDomain.TaskStateBounced:
		failed = 1
	default:
		return queueDomain.ErrInvalidOutcome
	}

	now := a.now().UTC()

	counted, err := a.campaignRepo.IncrementCounters(ctx, campaignID, sent, failed, now)
	if err != nil {
		return err
	}
	if !counted {
		a.logger.Warn("outcome not counted, campaign already drained or gone",
			slog.String("campaign_id", campaignID.String()),
			slog.String("state", string(state)),
		)
		return nil
	}

	completed, err := a.campaignRepo.CompleteIfDrained(ctx, campaignID, now)
	if err != nil {
		return err
	}
	if completed {
		a.logger.Info("campaign completed", slog.String("campaign_id", campaignID.String()))
	}
	return nil
}

func (a *aggregator) MarkFailed(ctx context.Context, campaignID uuid.UUID, message string) error {
	return a.campaignRepo.MarkFailed(ctx, campaignID, message, a.now().UTC())
}
