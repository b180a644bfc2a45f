package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/leadmail/internal/app"
	"github.com/allisson/leadmail/internal/config"
)

// Runnable is a long-lived component that stops when its context is cancelled.
type Runnable interface {
	Run(ctx context.Context) error
}

// RunWorker starts the dispatch pool and the scheduler and blocks until SIGINT/SIGTERM.
// Workers finish the task they hold before returning.
func RunWorker(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting worker",
		slog.String("version", version),
		slog.Int("workers", cfg.DispatchWorkers),
		slog.String("transport", cfg.MailTransport),
	)

	defer closeContainer(container, logger)

	pool, err := container.DispatchPool()
	if err != nil {
		return fmt.Errorf("failed to initialize dispatch pool: %w", err)
	}

	scheduler, err := container.Scheduler()
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runnables := []Runnable{pool, scheduler}
	if metricsServer != nil {
		runnables = append(runnables, metricsServerRunner{server: metricsServer, timeout: cfg.DBConnMaxLifetime})
	}

	return runAll(ctx, logger, runnables...)
}

// runAll runs every component until ctx is cancelled or one of them fails, in which
// case the others are stopped too.
func runAll(ctx context.Context, logger *slog.Logger, runnables ...Runnable) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range runnables {
		g.Go(func() error {
			return r.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil {
		logger.Error("worker stopped with error", slog.Any("error", err))
		return err
	}
	logger.Info("worker stopped")
	return nil
}

type startStopper interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// metricsServerRunner adapts the metrics server to Runnable.
type metricsServerRunner struct {
	server  startStopper
	timeout time.Duration
}

func (m metricsServerRunner) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- m.server.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	if err := m.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	return <-errCh
}
