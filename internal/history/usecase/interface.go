// Package usecase implements read access to the send history.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	historyDomain "github.com/allisson/leadmail/internal/history/domain"
)

// SendRecordRepository defines send record persistence operations.
type SendRecordRepository interface {
	// Create inserts the record; a record with the same id already present is left untouched.
	Create(ctx context.Context, record *historyDomain.SendRecord) error
	Get(ctx context.Context, id uuid.UUID) (*historyDomain.SendRecord, error)
	List(ctx context.Context, filter historyDomain.ListFilter) ([]*historyDomain.SendRecord, int64, error)
	// Summary counts records, optionally restricted to one campaign. Rates are left zero.
	Summary(ctx context.Context, campaignID *uuid.UUID) (*historyDomain.Summary, error)
	// MarkOpened sets opened_at once; it reports whether the record changed.
	MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// MarkClicked sets clicked_at once; it reports whether the record changed.
	MarkClicked(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// CampaignReader resolves the campaign a history listing belongs to.
type CampaignReader interface {
	Get(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error)
}

// HistoryUseCase defines the send history read operations.
type HistoryUseCase interface {
	ListByCampaign(
		ctx context.Context,
		campaignID uuid.UUID,
		filter historyDomain.ListFilter,
	) ([]*historyDomain.SendRecord, int64, error)
	List(
		ctx context.Context,
		filter historyDomain.ListFilter,
	) ([]*historyDomain.SendRecord, int64, *historyDomain.Summary, error)
	Get(ctx context.Context, id uuid.UUID) (*historyDomain.SendRecord, error)
}
