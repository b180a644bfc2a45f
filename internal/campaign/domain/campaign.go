// Package domain defines campaigns and their status lifecycle.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusSending   Status = "sending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every campaign status.
var Statuses = []Status{
	StatusDraft,
	StatusScheduled,
	StatusSending,
	StatusCompleted,
	StatusFailed,
	StatusCancelled,
}

// rank orders statuses; a transition may never lower it.
func (s Status) rank() int {
	switch s {
	case StatusDraft, StatusScheduled:
		return 0
	case StatusSending:
		return 1
	case StatusCompleted, StatusFailed, StatusCancelled:
		return 2
	default:
		return -1
	}
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s.rank() >= 0
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s.rank() == 2
}

// IsEditable reports whether the campaign content and schedule may still change.
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusScheduled
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Draft and scheduled are interchangeable; cancellation is only possible before sending starts.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.IsValid() || !next.IsValid() || s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return s.IsEditable()
	}
	if next == StatusCompleted {
		return s == StatusSending
	}
	return next.rank() >= s.rank() && s != next
}

// Campaign is a bulk send of one subject/body template to a fixed recipient set.
type Campaign struct {
	ID              uuid.UUID
	Name            string
	Subject         string
	Content         string
	Status          Status
	TotalRecipients int
	EmailsSent      int
	EmailsFailed    int
	ScheduledAt     *time.Time
	EnqueuedAt      *time.Time
	SentAt          *time.Time
	CompletedAt     *time.Time
	ErrorMessage    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Drained reports whether every recipient has reached a final outcome.
func (c *Campaign) Drained() bool {
	return c.TotalRecipients > 0 && c.EmailsSent+c.EmailsFailed >= c.TotalRecipients
}

// CreateCampaignInput contains the data required to create a campaign.
type CreateCampaignInput struct {
	Name         string
	Subject      string
	Content      string
	RecipientIDs []uuid.UUID
	ScheduledAt  *time.Time
	Draft        bool
}

// UpdateCampaignInput contains the editable fields of a campaign. Nil fields are left untouched.
// ClearSchedule moves a scheduled campaign back to draft.
type UpdateCampaignInput struct {
	Name          *string
	Subject       *string
	Content       *string
	ScheduledAt   *time.Time
	ClearSchedule bool
}

// SortField is a column campaigns can be ordered by.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByName      SortField = "name"
	SortByStatus    SortField = "status"
	SortBySentAt    SortField = "sent_at"
)

// ListFilter narrows and orders a campaign listing.
type ListFilter struct {
	Status   Status
	Search   string
	SortBy   SortField
	SortDesc bool
	Offset   int
	Limit    int
}

// Stats aggregates counters across all campaigns.
type Stats struct {
	TotalCampaigns    int64
	TotalEmailsSent   int64
	TotalEmailsFailed int64
	SuccessRate       float64
	ByStatus          map[Status]int64
}
