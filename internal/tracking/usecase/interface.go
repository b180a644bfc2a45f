// Package usecase records engagement events against send records.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	trackingDomain "github.com/allisson/leadmail/internal/tracking/domain"
)

// EngagementRepository persists first-open and first-click timestamps.
type EngagementRepository interface {
	MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MarkClicked(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// Deduper short-circuits repeated events before they reach the database.
// Acquire reports false when the event was already seen.
type Deduper interface {
	Acquire(ctx context.Context, kind trackingDomain.Kind, id uuid.UUID) (bool, error)
	Release(ctx context.Context, kind trackingDomain.Kind, id uuid.UUID) error
}

// TrackingUseCase records opens and clicks.
type TrackingUseCase interface {
	RecordOpen(ctx context.Context, recordID uuid.UUID) error
	RecordClick(ctx context.Context, recordID uuid.UUID) error
}
