package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/metrics"
)

// trackingUseCaseWithMetrics decorates TrackingUseCase with metrics instrumentation.
type trackingUseCaseWithMetrics struct {
	next    TrackingUseCase
	metrics metrics.BusinessMetrics
}

// NewTrackingUseCaseWithMetrics wraps a TrackingUseCase with metrics recording.
func NewTrackingUseCaseWithMetrics(useCase TrackingUseCase, m metrics.BusinessMetrics) TrackingUseCase {
	return &trackingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (t *trackingUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "tracking", operation, status)
	t.metrics.RecordDuration(ctx, "tracking", operation, time.Since(start), status)
}

// RecordOpen records metrics for open events.
func (t *trackingUseCaseWithMetrics) RecordOpen(ctx context.Context, recordID uuid.UUID) error {
	start := time.Now()
	err := t.next.RecordOpen(ctx, recordID)
	t.record(ctx, "tracking_open", start, err)
	return err
}

// RecordClick records metrics for click events.
func (t *trackingUseCaseWithMetrics) RecordClick(ctx context.Context, recordID uuid.UUID) error {
	start := time.Now()
	err := t.next.RecordClick(ctx, recordID)
	t.record(ctx, "tracking_click", start, err)
	return err
}
