package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	trackingDomain "github.com/allisson/leadmail/internal/tracking/domain"
)

type trackingUseCase struct {
	repo    EngagementRepository
	deduper Deduper
	logger  *slog.Logger
	now     func() time.Time
}

// NewTrackingUseCase creates a new TrackingUseCase. deduper may be nil.
func NewTrackingUseCase(repo EngagementRepository, deduper Deduper, logger *slog.Logger) TrackingUseCase {
	return &trackingUseCase{
		repo:    repo,
		deduper: deduper,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// RecordOpen marks the first open of a send record.
func (u *trackingUseCase) RecordOpen(ctx context.Context, recordID uuid.UUID) error {
	return u.record(ctx, trackingDomain.KindOpen, recordID, u.repo.MarkOpened)
}

// RecordClick marks the first click of a send record.
func (u *trackingUseCase) RecordClick(ctx context.Context, recordID uuid.UUID) error {
	return u.record(ctx, trackingDomain.KindClick, recordID, u.repo.MarkClicked)
}

func (u *trackingUseCase) record(
	ctx context.Context,
	kind trackingDomain.Kind,
	recordID uuid.UUID,
	mark func(ctx context.Context, id uuid.UUID, at time.Time) (bool, error),
) error {
	held := false
	if u.deduper != nil {
		first, err := u.deduper.Acquire(ctx, kind, recordID)
		switch {
		case err != nil:
			// The database predicate still guarantees a single write
			u.warn("tracking dedup unavailable", kind, recordID, err)
		case !first:
			return nil
		default:
			held = true
		}
	}

	changed, err := mark(ctx, recordID, u.now())
	// Only a landed write may keep the key; a record not yet committed must stay retryable.
	if held && (err != nil || !changed) {
		if releaseErr := u.deduper.Release(ctx, kind, recordID); releaseErr != nil {
			u.warn("failed to release tracking dedup key", kind, recordID, releaseErr)
		}
	}
	if err != nil {
		return err
	}

	if changed && u.logger != nil {
		u.logger.Debug("engagement recorded",
			slog.String("kind", string(kind)),
			slog.String("record_id", recordID.String()),
		)
	}
	return nil
}

func (u *trackingUseCase) warn(msg string, kind trackingDomain.Kind, recordID uuid.UUID, err error) {
	if u.logger == nil {
		return
	}
	u.logger.Warn(msg,
		slog.String("kind", string(kind)),
		slog.String("record_id", recordID.String()),
		slog.Any("error", err),
	)
}
