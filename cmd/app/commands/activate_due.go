package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	campaignUseCase "github.com/allisson/leadmail/internal/campaign/usecase"
)

// RunActivateDue enqueues every scheduled campaign whose send time has passed and
// re-drives sending campaigns that were never enqueued.
//
// Requirements: Database must be migrated and accessible.
func RunActivateDue(
	ctx context.Context,
	useCase campaignUseCase.CampaignUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	now := time.Now().UTC()
	logger.Info("activating due campaigns", slog.Time("now", now))

	count, err := useCase.ActivateDue(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to activate due campaigns: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]any{"activated": count}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Activated %d campaign(s)\n", count)
	}

	logger.Info("activation completed", slog.Int("activated", count))
	return nil
}
