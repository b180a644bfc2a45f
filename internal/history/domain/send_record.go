// Package domain defines send records, the durable history of every delivered or failed email.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/errors"
)

// Status is the delivery and engagement status of a send record.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusBounced Status = "bounced"
	StatusOpened  Status = "opened"
	StatusClicked Status = "clicked"
)

// Statuses lists every send record status.
var Statuses = []Status{StatusSent, StatusFailed, StatusBounced, StatusOpened, StatusClicked}

// recordNamespace seeds the deterministic send record ids.
var recordNamespace = uuid.MustParse("6f2d3c1e-7a51-4c1b-9d0e-5b8f4a2c9e17")

// RecordIDForTask returns the send record id owned by a recipient task. The id is
// stable across retries so tracking links stay identical and the record is written once.
func RecordIDForTask(taskID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(recordNamespace, taskID[:])
}

// SendRecord is the persisted result of sending one recipient task.
type SendRecord struct {
	ID                uuid.UUID
	RecipientTaskID   uuid.UUID
	CampaignID        uuid.UUID
	ContactID         uuid.UUID
	RecipientEmail    string
	RecipientName     string
	Subject           string
	Content           string
	Status            Status
	ProviderMessageID *string
	ErrorMessage      *string
	SentAt            *time.Time
	OpenedAt          *time.Time
	ClickedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ListFilter narrows and orders a history listing.
type ListFilter struct {
	CampaignID *uuid.UUID
	Status     Status
	Search     string
	SortBy     string
	SortDesc   bool
	Offset     int
	Limit      int
}

// Summary aggregates engagement over the records matching a filter.
// TotalSent counts every delivered record, including those later opened or clicked.
type Summary struct {
	TotalSent    int64
	TotalOpened  int64
	TotalClicked int64
	TotalFailed  int64
	OpenRate     float64
	ClickRate    float64
}

// SortFields lists the columns history can be ordered by.
var SortFields = []string{"created_at", "sent_at", "opened_at", "clicked_at", "recipient_email", "status"}

// Send record errors.
var (
	// ErrSendRecordNotFound indicates the send record does not exist.
	ErrSendRecordNotFound = errors.Wrap(errors.ErrNotFound, "send record not found")
)
