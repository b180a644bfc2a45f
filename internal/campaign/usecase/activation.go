package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

func (u *campaignUseCase) Activate(ctx context.Context, id uuid.UUID) error {
	_, err := u.activate(ctx, id)
	return err
}

// activate claims the campaign and enqueues its recipients in one transaction. It
// reports whether this call performed the activation.
func (u *campaignUseCase) activate(ctx context.Context, id uuid.UUID) (bool, error) {
	var enqueued int

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		now := u.now().UTC()

		claimed, err := u.campaignRepo.ClaimForActivation(ctx, id, now)
		if err != nil {
			return err
		}
		if !claimed {
			return nil
		}

		ids, err := u.campaignRepo.ListRecipientIDs(ctx, id)
		if err != nil {
			return err
		}
		contacts, err := u.contacts.ListByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			return campaignDomain.ErrNothingToEnqueue
		}
		if len(contacts) != len(ids) {
			u.logger.Warn("skipping recipients deleted since campaign creation",
				slog.String("campaign_id", id.String()),
				slog.Int("skipped", len(ids)-len(contacts)),
			)
			if err := u.campaignRepo.SetTotalRecipients(ctx, id, len(contacts), now); err != nil {
				return err
			}
		}

		if err := u.queue.Enqueue(ctx, id, enqueueItems(contacts)); err != nil {
			return err
		}
		enqueued = len(contacts)
		return nil
	})
	if err != nil {
		u.logger.Error("campaign activation failed",
			slog.String("campaign_id", id.String()),
			slog.Any("error", err),
		)
		if markErr := u.aggregator.MarkFailed(ctx, id, err.Error()); markErr != nil {
			u.logger.Error("failed to mark campaign as failed",
				slog.String("campaign_id", id.String()),
				slog.Any("error", markErr),
			)
		}
		return false, err
	}

	if enqueued > 0 {
		u.logger.Info("campaign activated",
			slog.String("campaign_id", id.String()),
			slog.Int("recipients", enqueued),
		)
	}
	return enqueued > 0, nil
}

func (u *campaignUseCase) ActivateDue(ctx context.Context, now time.Time) (int, error) {
	staleBefore := now.Add(-u.config.ActivationGracePeriod)

	ids, err := u.campaignRepo.ListDue(ctx, now.UTC(), staleBefore.UTC(), u.config.ActivationBatchSize)
	if err != nil {
		return 0, err
	}

	activated := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return activated, err
		}
		ok, err := u.activate(ctx, id)
		if err != nil {
			// Already marked failed; keep going with the rest of the batch.
			continue
		}
		if ok {
			activated++
		}
	}
	return activated, nil
}

func enqueueItems(contacts []*contactDomain.Contact) []queueDomain.EnqueueItem {
	items := make([]queueDomain.EnqueueItem, len(contacts))
	for i, c := range contacts {
		items[i] = queueDomain.EnqueueItem{
			ContactID: c.ID,
			Recipient: queueDomain.Recipient{
				Name:    c.Name,
				Email:   c.Email,
				Company: deref(c.Company),
				Phone:   deref(c.Phone),
				Status:  string(c.Status),
			},
		}
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
