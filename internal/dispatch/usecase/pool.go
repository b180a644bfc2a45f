package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// PoolConfig sizes a worker pool.
type PoolConfig struct {
	Workers int
	// WorkerPrefix is combined with the worker index to build lease owner ids.
	WorkerPrefix string
	// SendInterval and SendBurst configure each worker's token bucket.
	SendInterval time.Duration
	SendBurst    int
}

// Pool runs a fixed number of workers over the same queue.
type Pool struct {
	workers []*Worker
}

// NewPool creates config.Workers workers sharing deps, each with its own send limiter.
func NewPool(config PoolConfig, workerConfig Config, deps Dependencies) *Pool {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.SendBurst <= 0 {
		config.SendBurst = 1
	}

	workers := make([]*Worker, 0, config.Workers)
	for i := 0; i < config.Workers; i++ {
		limit := rate.Inf
		if config.SendInterval > 0 {
			limit = rate.Every(config.SendInterval)
		}
		id := fmt.Sprintf("%s-%d", config.WorkerPrefix, i)
		workers = append(workers, NewWorker(id, workerConfig, deps, rate.NewLimiter(limit, config.SendBurst)))
	}
	return &Pool{workers: workers}
}

// Workers returns the pool's workers.
func (p *Pool) Workers() []*Worker {
	return p.workers
}

// Run starts every worker and blocks until ctx is cancelled and all of them have
// finished their in-flight task.
func (p *Pool) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range p.workers {
		g.Go(func() error {
			return w.Run(gctx)
		})
	}
	return g.Wait()
}
