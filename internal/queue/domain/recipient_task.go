// Package domain defines recipient tasks, the unit of work of the send queue.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/errors"
)

// TaskState represents the state of a recipient task.
type TaskState string

const (
	TaskStatePending TaskState = "pending"
	TaskStateSending TaskState = "sending"
	TaskStateSent    TaskState = "sent"
	TaskStateFailed  TaskState = "failed"
	TaskStateBounced TaskState = "bounced"
)

// IsTerminal reports whether the task reached a final outcome.
func (s TaskState) IsTerminal() bool {
	return s == TaskStateSent || s == TaskStateFailed || s == TaskStateBounced
}

// Recipient is the contact snapshot captured when the task is enqueued.
// Sends always use the snapshot, never the live contact.
type Recipient struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Status  string
}

// RecipientTask is one campaign/recipient pairing waiting to be sent.
type RecipientTask struct {
	ID             uuid.UUID
	CampaignID     uuid.UUID
	ContactID      uuid.UUID
	Position       int
	Recipient      Recipient
	State          TaskState
	AttemptCount   int
	LastError      *string
	LeaseOwner     *string
	LeaseExpiresAt *time.Time
	AvailableAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LeaseExpired reports whether the task is sending under a lease that ended before now.
func (t *RecipientTask) LeaseExpired(now time.Time) bool {
	return t.State == TaskStateSending && t.LeaseExpiresAt != nil && !t.LeaseExpiresAt.After(now)
}

// HeldBy reports whether workerID currently owns the task's lease.
func (t *RecipientTask) HeldBy(workerID string) bool {
	return t.State == TaskStateSending && t.LeaseOwner != nil && *t.LeaseOwner == workerID
}

// Queue errors.
var (
	// ErrTaskNotFound indicates the task does not exist.
	ErrTaskNotFound = errors.Wrap(errors.ErrNotFound, "recipient task not found")

	// ErrLeaseLost indicates the caller no longer holds the task's lease.
	ErrLeaseLost = errors.Wrap(errors.ErrInvalidState, "task lease is not held by this worker")

	// ErrLeaseActive indicates the task's lease has not expired yet.
	ErrLeaseActive = errors.Wrap(errors.ErrInvalidState, "task lease has not expired")

	// ErrInvalidOutcome indicates a non-terminal state was given as a task outcome.
	ErrInvalidOutcome = errors.Wrap(errors.ErrInvalidInput, "outcome must be sent, failed or bounced")
)

// EnqueueItem is one recipient handed to the queue at activation time.
type EnqueueItem struct {
	ContactID uuid.UUID
	Recipient Recipient
}

// Outcome is the final result reported for a leased task.
type Outcome struct {
	State TaskState
	Error string
}
