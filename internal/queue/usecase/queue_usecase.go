package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/database"
	apperrors "github.com/allisson/leadmail/internal/errors"
	"github.com/allisson/leadmail/internal/queue/domain"
)

// Config holds recipient queue configuration.
type Config struct {
	LeaseTimeout time.Duration
	MaxAttempts  int
	BatchSize    int
}

type queueUseCase struct {
	config    Config
	txManager database.TxManager
	taskRepo  TaskRepository
	recorder  OutcomeRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// NewQueueUseCase creates a new recipient queue.
func NewQueueUseCase(
	config Config,
	txManager database.TxManager,
	taskRepo TaskRepository,
	recorder OutcomeRecorder,
	logger *slog.Logger,
) QueueUseCase {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}
	return &queueUseCase{
		config:    config,
		txManager: txManager,
		taskRepo:  taskRepo,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

func (q *queueUseCase) Enqueue(ctx context.Context, campaignID uuid.UUID, items []domain.EnqueueItem) error {
	now := q.now().UTC()
	return q.txManager.WithTx(ctx, func(ctx context.Context) error {
		for i, item := range items {
			task := &domain.RecipientTask{
				ID:          uuid.Must(uuid.NewV7()),
				CampaignID:  campaignID,
				ContactID:   item.ContactID,
				Position:    i,
				Recipient:   item.Recipient,
				State:       domain.TaskStatePending,
				AvailableAt: now,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := q.taskRepo.Create(ctx, task); err != nil {
				return err
			}
		}
		return nil
	})
}

func (q *queueUseCase) Lease(ctx context.Context, workerID string) (*domain.RecipientTask, error) {
	var leased *domain.RecipientTask

	err := q.txManager.WithTx(ctx, func(ctx context.Context) error {
		now := q.now().UTC()

		task, err := q.taskRepo.LockNextPending(ctx, now)
		if err != nil {
			if apperrors.Is(err, domain.ErrTaskNotFound) {
				return nil
			}
			return err
		}

		expiresAt := now.Add(q.config.LeaseTimeout)
		task.State = domain.TaskStateSending
		task.LeaseOwner = &workerID
		task.LeaseExpiresAt = &expiresAt
		task.UpdatedAt = now

		if err := q.taskRepo.Update(ctx, task); err != nil {
			return err
		}
		leased = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leased, nil
}

func (q *queueUseCase) Complete(
	ctx context.Context,
	taskID uuid.UUID,
	workerID string,
	outcome domain.Outcome,
) error {
	if !outcome.State.IsTerminal() {
		return domain.ErrInvalidOutcome
	}

	return q.txManager.WithTx(ctx, func(ctx context.Context) error {
		task, err := q.taskRepo.LockByID(ctx, taskID)
		if err != nil {
			return err
		}
		if !task.HeldBy(workerID) {
			return domain.ErrLeaseLost
		}

		task.State = outcome.State
		task.AttemptCount++
		if outcome.Error != "" {
			task.LastError = &outcome.Error
		}
		task.LeaseOwner = nil
		task.LeaseExpiresAt = nil
		task.UpdatedAt = q.now().UTC()

		if err := q.taskRepo.Update(ctx, task); err != nil {
			return err
		}
		return q.recorder.RecordOutcome(ctx, task.CampaignID, task.State)
	})
}

func (q *queueUseCase) Retry(
	ctx context.Context,
	taskID uuid.UUID,
	workerID string,
	cause string,
	availableAt time.Time,
) error {
	return q.txManager.WithTx(ctx, func(ctx context.Context) error {
		task, err := q.taskRepo.LockByID(ctx, taskID)
		if err != nil {
			return err
		}
		if !task.HeldBy(workerID) {
			return domain.ErrLeaseLost
		}

		task.State = domain.TaskStatePending
		task.AttemptCount++
		task.LastError = &cause
		task.LeaseOwner = nil
		task.LeaseExpiresAt = nil
		task.AvailableAt = availableAt.UTC()
		task.UpdatedAt = q.now().UTC()

		return q.taskRepo.Update(ctx, task)
	})
}

func (q *queueUseCase) Requeue(ctx context.Context, taskID uuid.UUID, now time.Time) error {
	return q.txManager.WithTx(ctx, func(ctx context.Context) error {
		task, err := q.taskRepo.LockByID(ctx, taskID)
		if err != nil {
			return err
		}
		if !task.LeaseExpired(now) {
			return domain.ErrLeaseActive
		}

		owner := ""
		if task.LeaseOwner != nil {
			owner = *task.LeaseOwner
		}

		task.AttemptCount++
		task.LeaseOwner = nil
		task.LeaseExpiresAt = nil
		task.UpdatedAt = now.UTC()

		if task.AttemptCount >= q.config.MaxAttempts {
			cause := fmt.Sprintf("lease expired after %d attempts", task.AttemptCount)
			task.State = domain.TaskStateFailed
			task.LastError = &cause
			if err := q.taskRepo.Update(ctx, task); err != nil {
				return err
			}
			if q.logger != nil {
				q.logger.Warn("task failed after lease expiry",
					slog.String("task_id", task.ID.String()),
					slog.String("campaign_id", task.CampaignID.String()),
					slog.String("worker_id", owner),
					slog.Int("attempt", task.AttemptCount),
				)
			}
			return q.recorder.RecordOutcome(ctx, task.CampaignID, task.State)
		}

		cause := "lease expired"
		task.State = domain.TaskStatePending
		task.LastError = &cause
		task.AvailableAt = now.UTC()
		if err := q.taskRepo.Update(ctx, task); err != nil {
			return err
		}
		if q.logger != nil {
			q.logger.Info("task requeued after lease expiry",
				slog.String("task_id", task.ID.String()),
				slog.String("campaign_id", task.CampaignID.String()),
				slog.String("worker_id", owner),
				slog.Int("attempt", task.AttemptCount),
			)
		}
		return nil
	})
}

func (q *queueUseCase) ReclaimExpired(ctx context.Context, now time.Time) (int, error) {
	ids, err := q.taskRepo.ListExpiredLeases(ctx, now, q.config.BatchSize)
	if err != nil {
		return 0, err
	}

	reclaimed := 0
	for _, id := range ids {
		if err := q.Requeue(ctx, id, now); err != nil {
			// Completed or re-leased by its worker since the listing.
			if apperrors.Is(err, domain.ErrLeaseActive) {
				continue
			}
			return reclaimed, err
		}
		reclaimed++
	}
	return reclaimed, nil
}
