package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/allisson/leadmail/internal/database"
	"github.com/allisson/leadmail/internal/dispatch/service"
	apperrors "github.com/allisson/leadmail/internal/errors"
	historyDomain "github.com/allisson/leadmail/internal/history/domain"
	"github.com/allisson/leadmail/internal/metrics"
	"github.com/allisson/leadmail/internal/personalization"
	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

// Config holds dispatch worker configuration.
type Config struct {
	PollInterval     time.Duration
	TransportTimeout time.Duration
	// BaseURL is the public origin tracking links point at.
	BaseURL string
	Retry   RetryPolicy
}

// Dependencies are the collaborators shared by every worker of a pool.
type Dependencies struct {
	TxManager database.TxManager
	Queue     TaskQueue
	Campaigns CampaignReader
	Records   RecordWriter
	Contacts  ContactToucher
	Transport service.Transport
	Metrics   metrics.BusinessMetrics
	Logger    *slog.Logger
}

// Worker leases recipient tasks one at a time and drives each to an outcome.
type Worker struct {
	id      string
	config  Config
	deps    Dependencies
	limiter *rate.Limiter
	now     func() time.Time
}

// NewWorker creates a worker. limiter paces sends; nil disables pacing.
func NewWorker(id string, config Config, deps Dependencies, limiter *rate.Limiter) *Worker {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewNoOpBusinessMetrics()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 500 * time.Millisecond
	}
	if config.TransportTimeout <= 0 {
		config.TransportTimeout = 30 * time.Second
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Worker{id: id, config: config, deps: deps, limiter: limiter, now: time.Now}
}

// ID returns the worker's lease owner id.
func (w *Worker) ID() string {
	return w.id
}

// Run processes tasks until ctx is cancelled, waiting PollInterval whenever the
// queue is idle or a step fails. A task already leased when ctx ends is finished first.
func (w *Worker) Run(ctx context.Context) error {
	w.deps.Logger.Info("dispatch worker started", slog.String("worker_id", w.id))
	defer w.deps.Logger.Info("dispatch worker stopped", slog.String("worker_id", w.id))

	for {
		if ctx.Err() != nil {
			return nil
		}

		processed, err := w.ProcessNext(ctx)
		if err != nil {
			w.deps.Logger.Error("dispatch step failed",
				slog.String("worker_id", w.id),
				slog.Any("error", err),
			)
		}
		if processed && err == nil {
			continue
		}

		timer := time.NewTimer(w.config.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// ProcessNext leases one task and handles it. It reports false when the queue was idle.
func (w *Worker) ProcessNext(ctx context.Context) (bool, error) {
	task, err := w.deps.Queue.Lease(ctx, w.id)
	if err != nil {
		return false, fmt.Errorf("lease task: %w", err)
	}
	if task == nil {
		return false, nil
	}

	// Shutdown must not abandon a leased task halfway through its send.
	workCtx := context.WithoutCancel(ctx)
	return true, w.handle(workCtx, task)
}

func (w *Worker) handle(ctx context.Context, task *queueDomain.RecipientTask) error {
	logger := w.deps.Logger.With(
		slog.String("task_id", task.ID.String()),
		slog.String("campaign_id", task.CampaignID.String()),
		slog.String("worker_id", w.id),
		slog.Int("attempt", task.AttemptCount+1),
	)
	logger.Debug("task leased")

	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	start := time.Now()
	campaign, err := w.deps.Campaigns.Get(ctx, task.CampaignID)
	if err != nil {
		return w.retryOrFail(ctx, task, nil, start, logger, fmt.Errorf("load campaign: %w", err))
	}

	recordID := historyDomain.RecordIDForTask(task.ID)
	subject := personalization.Render(campaign.Subject, task.Recipient)
	body := personalization.Render(campaign.Content, task.Recipient)
	msg := service.Message{
		To:      task.Recipient.Email,
		ToName:  task.Recipient.Name,
		Subject: subject,
		HTML:    personalization.Decorate(body, w.config.BaseURL, recordID),
		Text:    personalization.PlainText(body),
	}

	now := w.now().UTC()
	record := &historyDomain.SendRecord{
		ID:              recordID,
		RecipientTaskID: task.ID,
		CampaignID:      task.CampaignID,
		ContactID:       task.ContactID,
		RecipientEmail:  task.Recipient.Email,
		RecipientName:   task.Recipient.Name,
		Subject:         subject,
		Content:         body,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	sendCtx, cancel := context.WithTimeout(ctx, w.config.TransportTimeout)
	result, sendErr := w.deps.Transport.Send(sendCtx, msg)
	cancel()

	if sendErr == nil {
		sentAt := w.now().UTC()
		record.Status = historyDomain.StatusSent
		record.SentAt = &sentAt
		if result != nil && result.MessageID != "" {
			record.ProviderMessageID = &result.MessageID
		}
		w.recordMetrics(ctx, "sent", start)
		err := w.finalize(ctx, task, record, queueDomain.Outcome{State: queueDomain.TaskStateSent}, logger)
		if err == nil {
			logger.Info("email sent", slog.String("to", task.Recipient.Email))
		}
		return err
	}

	switch service.Classify(sendErr) {
	case service.KindBounced:
		w.recordMetrics(ctx, "bounced", start)
		logger.Warn("email bounced", slog.Any("error", sendErr))
		return w.fail(ctx, task, record, queueDomain.TaskStateBounced, sendErr, logger)
	case service.KindTerminal:
		w.recordMetrics(ctx, "failed", start)
		logger.Warn("email rejected", slog.Any("error", sendErr))
		return w.fail(ctx, task, record, queueDomain.TaskStateFailed, sendErr, logger)
	default:
		return w.retryOrFail(ctx, task, record, start, logger, sendErr)
	}
}

// retryOrFail retries a retryable failure with backoff or fails the task once its
// attempts are exhausted. record is nil when nothing was rendered yet.
func (w *Worker) retryOrFail(
	ctx context.Context,
	task *queueDomain.RecipientTask,
	record *historyDomain.SendRecord,
	start time.Time,
	logger *slog.Logger,
	cause error,
) error {
	if w.config.Retry.ShouldRetry(task.AttemptCount) {
		delay := w.config.Retry.Backoff(task.AttemptCount + 1)
		w.recordMetrics(ctx, "retry", start)
		logger.Warn("send failed, retrying",
			slog.Duration("delay", delay),
			slog.Any("error", cause),
		)
		err := w.deps.Queue.Retry(ctx, task.ID, w.id, cause.Error(), w.now().Add(delay))
		return w.leaseLost(err, logger)
	}

	w.recordMetrics(ctx, "failed", start)
	logger.Error("send failed, attempts exhausted", slog.Any("error", cause))

	if record == nil {
		now := w.now().UTC()
		record = &historyDomain.SendRecord{
			ID:              historyDomain.RecordIDForTask(task.ID),
			RecipientTaskID: task.ID,
			CampaignID:      task.CampaignID,
			ContactID:       task.ContactID,
			RecipientEmail:  task.Recipient.Email,
			RecipientName:   task.Recipient.Name,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}
	return w.fail(ctx, task, record, queueDomain.TaskStateFailed, cause, logger)
}

func (w *Worker) fail(
	ctx context.Context,
	task *queueDomain.RecipientTask,
	record *historyDomain.SendRecord,
	state queueDomain.TaskState,
	cause error,
	logger *slog.Logger,
) error {
	message := cause.Error()
	record.Status = historyDomain.Status(state)
	record.ErrorMessage = &message
	return w.finalize(ctx, task, record, queueDomain.Outcome{State: state, Error: message}, logger)
}

// finalize writes the send record and completes the task in one transaction. A
// successful send also stamps the contact.
func (w *Worker) finalize(
	ctx context.Context,
	task *queueDomain.RecipientTask,
	record *historyDomain.SendRecord,
	outcome queueDomain.Outcome,
	logger *slog.Logger,
) error {
	err := w.deps.TxManager.WithTx(ctx, func(ctx context.Context) error {
		if err := w.deps.Records.Create(ctx, record); err != nil {
			return err
		}
		if err := w.deps.Queue.Complete(ctx, task.ID, w.id, outcome); err != nil {
			return err
		}
		if outcome.State == queueDomain.TaskStateSent && w.deps.Contacts != nil {
			return w.deps.Contacts.TouchLastContacted(ctx, task.ContactID, *record.SentAt)
		}
		return nil
	})
	return w.leaseLost(err, logger)
}

// leaseLost swallows ErrLeaseLost: the task was reclaimed and another attempt owns it now.
func (w *Worker) leaseLost(err error, logger *slog.Logger) error {
	if apperrors.Is(err, queueDomain.ErrLeaseLost) {
		logger.Warn("task lease lost before its outcome was recorded")
		return nil
	}
	return err
}

func (w *Worker) recordMetrics(ctx context.Context, outcome string, start time.Time) {
	w.deps.Metrics.RecordOperation(ctx, "dispatch", "dispatch_send", outcome)
	w.deps.Metrics.RecordDuration(ctx, "dispatch", "dispatch_send", time.Since(start), outcome)
	if outcome != "retry" {
		w.deps.Metrics.RecordEmail(ctx, outcome)
	}
}
