package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	queueUseCase "github.com/allisson/leadmail/internal/queue/usecase"
)

// RunReclaimLeases requeues tasks whose worker lease expired, or fails them once their
// attempts are exhausted.
func RunReclaimLeases(
	ctx context.Context,
	useCase queueUseCase.QueueUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	now := time.Now().UTC()
	logger.Info("reclaiming expired leases", slog.Time("now", now))

	count, err := useCase.ReclaimExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to reclaim expired leases: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]any{"reclaimed": count}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Reclaimed %d task(s)\n", count)
	}

	logger.Info("reclaim completed", slog.Int("reclaimed", count))
	return nil
}
