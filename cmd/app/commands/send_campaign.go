package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	campaignUseCase "github.com/allisson/leadmail/internal/campaign/usecase"
)

// RunSendCampaign starts sending a draft or scheduled campaign right away.
func RunSendCampaign(
	ctx context.Context,
	useCase campaignUseCase.CampaignUseCase,
	logger *slog.Logger,
	writer io.Writer,
	campaignIDStr string,
	format string,
) error {
	campaignID, err := uuid.Parse(campaignIDStr)
	if err != nil {
		return fmt.Errorf("invalid campaign ID format: %w", err)
	}

	logger.Info("sending campaign", slog.String("campaign_id", campaignID.String()))

	campaign, err := useCase.SendNow(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("failed to send campaign: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]any{
			"id":               campaign.ID.String(),
			"name":             campaign.Name,
			"status":           string(campaign.Status),
			"total_recipients": campaign.TotalRecipients,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(
			writer,
			"Campaign %s (%s) is %s with %d recipient(s)\n",
			campaign.Name,
			campaign.ID,
			campaign.Status,
			campaign.TotalRecipients,
		)
	}

	logger.Info("campaign send started",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("status", string(campaign.Status)),
	)
	return nil
}
