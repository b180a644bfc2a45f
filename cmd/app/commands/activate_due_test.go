package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	campaignMocks "github.com/allisson/leadmail/internal/campaign/usecase/mocks"
)

func TestRunActivateDue(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := campaignMocks.NewMockCampaignUseCase(t)
		mockUseCase.EXPECT().ActivateDue(ctx, mock.Anything).Return(2, nil)

		var out bytes.Buffer
		err := RunActivateDue(ctx, mockUseCase, logger, &out, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Activated 2 campaign(s)")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := campaignMocks.NewMockCampaignUseCase(t)
		mockUseCase.EXPECT().ActivateDue(ctx, mock.Anything).Return(0, nil)

		var out bytes.Buffer
		err := RunActivateDue(ctx, mockUseCase, logger, &out, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"activated": 0`)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := campaignMocks.NewMockCampaignUseCase(t)
		mockUseCase.EXPECT().ActivateDue(ctx, mock.Anything).Return(0, errors.New("db down"))

		err := RunActivateDue(ctx, mockUseCase, logger, &bytes.Buffer{}, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to activate due campaigns: db down")
	})
}
