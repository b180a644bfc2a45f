// Package usecase implements the durable recipient queue: enqueueing snapshots,
// leasing tasks to workers and recording their transitions.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/queue/domain"
)

// TaskRepository defines recipient task persistence operations.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.RecipientTask) error
	// LockNextPending locks the oldest pending task that is available at now and belongs
	// to a sending campaign, skipping rows locked by other transactions.
	// It returns domain.ErrTaskNotFound when nothing is leasable.
	LockNextPending(ctx context.Context, now time.Time) (*domain.RecipientTask, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.RecipientTask, error)
	Update(ctx context.Context, task *domain.RecipientTask) error
	ListExpiredLeases(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

// OutcomeRecorder folds a task's final state into its campaign's counters.
// It is called inside the task transition transaction.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, campaignID uuid.UUID, state domain.TaskState) error
}

// QueueUseCase defines the recipient queue operations.
type QueueUseCase interface {
	// Enqueue snapshots items into pending tasks, preserving their order.
	Enqueue(ctx context.Context, campaignID uuid.UUID, items []domain.EnqueueItem) error

	// Lease hands the next available task to workerID. It returns nil, nil when idle.
	Lease(ctx context.Context, workerID string) (*domain.RecipientTask, error)

	// Complete moves a leased task to its final state and updates campaign counters.
	Complete(ctx context.Context, taskID uuid.UUID, workerID string, outcome domain.Outcome) error

	// Retry returns a leased task to pending after a retryable failure.
	Retry(ctx context.Context, taskID uuid.UUID, workerID string, cause string, availableAt time.Time) error

	// Requeue releases a task whose lease expired at or before now.
	Requeue(ctx context.Context, taskID uuid.UUID, now time.Time) error

	// ReclaimExpired requeues every task whose lease expired at or before now.
	ReclaimExpired(ctx context.Context, now time.Time) (int, error)
}
