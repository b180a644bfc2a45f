package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	campaignMocks "github.com/allisson/leadmail/internal/campaign/usecase/mocks"
)

func TestRunSendCampaign(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	campaignID := uuid.Must(uuid.NewV7())
	campaign := &campaignDomain.Campaign{
		ID:              campaignID,
		Name:            "Spring launch",
		Status:          campaignDomain.StatusSending,
		TotalRecipients: 12,
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := campaignMocks.NewMockCampaignUseCase(t)
		mockUseCase.EXPECT().SendNow(ctx, campaignID).Return(campaign, nil)

		var out bytes.Buffer
		err := RunSendCampaign(ctx, mockUseCase, logger, &out, campaignID.String(), "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Campaign Spring launch")
		require.Contains(t, out.String(), "is sending with 12 recipient(s)")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := campaignMocks.NewMockCampaignUseCase(t)
		mockUseCase.EXPECT().SendNow(ctx, campaignID).Return(campaign, nil)

		var out bytes.Buffer
		err := RunSendCampaign(ctx, mockUseCase, logger, &out, campaignID.String(), "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"status": "sending"`)
		require.Contains(t, out.String(), `"total_recipients": 12`)
	})

	t.Run("invalid-id", func(t *testing.T) {
		mockUseCase := campaignMocks.NewMockCampaignUseCase(t)

		err := RunSendCampaign(ctx, mockUseCase, logger, &bytes.Buffer{}, "not-a-uuid", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid campaign ID format")
	})

	t.Run("not-editable", func(t *testing.T) {
		mockUseCase := campaignMocks.NewMockCampaignUseCase(t)
		mockUseCase.EXPECT().SendNow(ctx, campaignID).Return(nil, campaignDomain.ErrCampaignNotEditable)

		err := RunSendCampaign(ctx, mockUseCase, logger, &bytes.Buffer{}, campaignID.String(), "text")

		require.ErrorIs(t, err, campaignDomain.ErrCampaignNotEditable)
	})
}
