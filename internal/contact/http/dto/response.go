package dto

import (
	"time"

	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	"github.com/allisson/leadmail/internal/httputil"
)

// ContactResponse represents a contact in API responses.
type ContactResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone"`
	Company       *string    `json:"company"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes"`
	Source        *string    `json:"source"`
	LeadScore     int        `json:"lead_score"`
	LastContacted *time.Time `json:"last_contacted"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MapContactToResponse converts a domain contact to an API response.
func MapContactToResponse(contact *contactDomain.Contact) ContactResponse {
	return ContactResponse{
		ID:            contact.ID.String(),
		Name:          contact.Name,
		Email:         contact.Email,
		Phone:         contact.Phone,
		Company:       contact.Company,
		Status:        string(contact.Status),
		Notes:         contact.Notes,
		Source:        contact.Source,
		LeadScore:     contact.LeadScore,
		LastContacted: contact.LastContacted,
		CreatedAt:     contact.CreatedAt,
		UpdatedAt:     contact.UpdatedAt,
	}
}

// ListContactsResponse represents a page of contacts.
type ListContactsResponse struct {
	Data       []ContactResponse   `json:"data"`
	Pagination httputil.Pagination `json:"pagination"`
}

// MapContactsToListResponse converts a page of domain contacts to an API response.
func MapContactsToListResponse(
	contacts []*contactDomain.Contact,
	pagination httputil.Pagination,
) ListContactsResponse {
	data := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		data = append(data, MapContactToResponse(contact))
	}
	return ListContactsResponse{Data: data, Pagination: pagination}
}

// ContactStatsResponse represents contact counts per pipeline stage.
type ContactStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// MapStatsToResponse converts domain stats to an API response.
func MapStatsToResponse(stats *contactDomain.Stats) ContactStatsResponse {
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return ContactStatsResponse{Total: stats.Total, ByStatus: byStatus}
}
