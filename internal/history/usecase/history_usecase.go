package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	historyDomain "github.com/allisson/leadmail/internal/history/domain"
)

type historyUseCase struct {
	recordRepo SendRecordRepository
	campaigns  CampaignReader
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(recordRepo SendRecordRepository, campaigns CampaignReader) HistoryUseCase {
	return &historyUseCase{
		recordRepo: recordRepo,
		campaigns:  campaigns,
	}
}

// ListByCampaign returns the records of one campaign, newest first.
func (u *historyUseCase) ListByCampaign(
	ctx context.Context,
	campaignID uuid.UUID,
	filter historyDomain.ListFilter,
) ([]*historyDomain.SendRecord, int64, error) {
	if _, err := u.campaigns.Get(ctx, campaignID); err != nil {
		return nil, 0, err
	}

	filter.CampaignID = &campaignID
	filter.Search = ""
	filter.SortBy = "created_at"
	filter.SortDesc = true
	return u.recordRepo.List(ctx, filter)
}

// List returns a page of records plus the engagement summary.
// The summary honours the campaign filter only.
func (u *historyUseCase) List(
	ctx context.Context,
	filter historyDomain.ListFilter,
) ([]*historyDomain.SendRecord, int64, *historyDomain.Summary, error) {
	filter.Search = strings.TrimSpace(filter.Search)

	records, total, err := u.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, nil, err
	}

	summary, err := u.recordRepo.Summary(ctx, filter.CampaignID)
	if err != nil {
		return nil, 0, nil, err
	}
	summary.OpenRate = rate(summary.TotalOpened, summary.TotalSent)
	summary.ClickRate = rate(summary.TotalClicked, summary.TotalSent)

	return records, total, summary, nil
}

func (u *historyUseCase) Get(ctx context.Context, id uuid.UUID) (*historyDomain.SendRecord, error) {
	return u.recordRepo.Get(ctx, id)
}

// rate returns part/whole as a percentage rounded to two decimals.
func rate(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}
