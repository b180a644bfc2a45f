// Package domain defines the contact (lead) entity consumed by the campaign pipeline.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the sales pipeline stage of a contact. It is independent of any email status.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusProposal  Status = "proposal"
	StatusClosed    Status = "closed"
)

// Statuses lists every pipeline stage in order.
var Statuses = []Status{StatusNew, StatusContacted, StatusQualified, StatusProposal, StatusClosed}

// IsValid reports whether s is a known pipeline stage.
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Contact represents a lead in the directory.
type Contact struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         *string
	Company       *string
	Status        Status
	Notes         *string
	Source        *string
	LeadScore     int
	LastContacted *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Stats counts contacts per pipeline stage.
type Stats struct {
	Total    int64
	ByStatus map[Status]int64
}

// ListFilter narrows a contact listing.
type ListFilter struct {
	Status Status
	Search string
	Offset int
	Limit  int
}

// CreateContactInput contains the data required to create a contact.
type CreateContactInput struct {
	Name      string
	Email     string
	Phone     *string
	Company   *string
	Status    Status
	Notes     *string
	Source    *string
	LeadScore int
}

// UpdateContactInput contains the fields that may change on a contact. Nil fields are left untouched.
type UpdateContactInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Company   *string
	Status    *Status
	Notes     *string
	Source    *string
	LeadScore *int
}
