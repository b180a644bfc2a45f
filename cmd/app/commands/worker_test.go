package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingRunnable struct {
	stopped atomic.Bool
}

func (b *blockingRunnable) Run(ctx context.Context) error {
	<-ctx.Done()
	b.stopped.Store(true)
	return nil
}

type failingRunnable struct{}

func (failingRunnable) Run(ctx context.Context) error {
	return errors.New("boom")
}

type fakeStartStopper struct {
	stop     chan struct{}
	shutdown atomic.Bool
}

func (f *fakeStartStopper) Start(ctx context.Context) error {
	<-f.stop
	return nil
}

func (f *fakeStartStopper) Shutdown(ctx context.Context) error {
	f.shutdown.Store(true)
	close(f.stop)
	return nil
}

func TestRunAll(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("stops-on-cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		a, b := &blockingRunnable{}, &blockingRunnable{}

		done := make(chan error, 1)
		go func() { done <- runAll(ctx, logger, a, b) }()

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("runAll did not return after cancel")
		}
		assert.True(t, a.stopped.Load())
		assert.True(t, b.stopped.Load())
	})

	t.Run("failure-stops-others", func(t *testing.T) {
		a := &blockingRunnable{}

		err := runAll(context.Background(), logger, a, failingRunnable{})

		require.EqualError(t, err, "boom")
		assert.True(t, a.stopped.Load())
	})
}

func TestMetricsServerRunner(t *testing.T) {
	server := &fakeStartStopper{stop: make(chan struct{})}
	runner := metricsServerRunner{server: server, timeout: time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not return after cancel")
	}
	assert.True(t, server.shutdown.Load())
}
