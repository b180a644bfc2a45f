package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	"github.com/allisson/leadmail/internal/metrics"
)

// campaignUseCaseWithMetrics decorates CampaignUseCase with metrics instrumentation.
type campaignUseCaseWithMetrics struct {
	next    CampaignUseCase
	metrics metrics.BusinessMetrics
}

// NewCampaignUseCaseWithMetrics wraps a CampaignUseCase with metrics recording.
func NewCampaignUseCaseWithMetrics(useCase CampaignUseCase, m metrics.BusinessMetrics) CampaignUseCase {
	return &campaignUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *campaignUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "campaigns", operation, status)
	c.metrics.RecordDuration(ctx, "campaigns", operation, time.Since(start), status)
}

// Create records metrics for campaign creation.
func (c *campaignUseCaseWithMetrics) Create(
	ctx context.Context,
	input campaignDomain.CreateCampaignInput,
) (*campaignDomain.Campaign, error) {
	start := time.Now()
	campaign, err := c.next.Create(ctx, input)
	c.record(ctx, "campaign_create", start, err)
	return campaign, err
}

// Get records metrics for campaign lookups.
func (c *campaignUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	start := time.Now()
	campaign, err := c.next.Get(ctx, id)
	c.record(ctx, "campaign_get", start, err)
	return campaign, err
}

// List records metrics for campaign listings.
func (c *campaignUseCaseWithMetrics) List(
	ctx context.Context,
	filter campaignDomain.ListFilter,
) ([]*campaignDomain.Campaign, int64, error) {
	start := time.Now()
	campaigns, total, err := c.next.List(ctx, filter)
	c.record(ctx, "campaign_list", start, err)
	return campaigns, total, err
}

// Update records metrics for campaign updates.
func (c *campaignUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input campaignDomain.UpdateCampaignInput,
) (*campaignDomain.Campaign, error) {
	start := time.Now()
	campaign, err := c.next.Update(ctx, id, input)
	c.record(ctx, "campaign_update", start, err)
	return campaign, err
}

// Delete records metrics for campaign deletion.
func (c *campaignUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, id)
	c.record(ctx, "campaign_delete", start, err)
	return err
}

// Cancel records metrics for campaign cancellation.
func (c *campaignUseCaseWithMetrics) Cancel(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	start := time.Now()
	campaign, err := c.next.Cancel(ctx, id)
	c.record(ctx, "campaign_cancel", start, err)
	return campaign, err
}

// SendNow records metrics for immediate sends.
func (c *campaignUseCaseWithMetrics) SendNow(ctx context.Context, id uuid.UUID) (*campaignDomain.Campaign, error) {
	start := time.Now()
	campaign, err := c.next.SendNow(ctx, id)
	c.record(ctx, "campaign_send_now", start, err)
	return campaign, err
}

// Stats records metrics for campaign statistics.
func (c *campaignUseCaseWithMetrics) Stats(ctx context.Context) (*campaignDomain.Stats, error) {
	start := time.Now()
	stats, err := c.next.Stats(ctx)
	c.record(ctx, "campaign_stats", start, err)
	return stats, err
}

// Activate records metrics for campaign activation.
func (c *campaignUseCaseWithMetrics) Activate(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Activate(ctx, id)
	c.record(ctx, "campaign_activate", start, err)
	return err
}

// ActivateDue records metrics for the scheduled activation sweep.
func (c *campaignUseCaseWithMetrics) ActivateDue(ctx context.Context, now time.Time) (int, error) {
	start := time.Now()
	n, err := c.next.ActivateDue(ctx, now)
	c.record(ctx, "campaign_activate_due", start, err)
	return n, err
}
