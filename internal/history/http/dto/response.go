// Package dto provides data transfer objects for send history responses.
package dto

import (
	"time"

	historyDomain "github.com/allisson/leadmail/internal/history/domain"
	"github.com/allisson/leadmail/internal/httputil"
)

// SendRecordResponse represents a send record in API responses.
type SendRecordResponse struct {
	ID                string     `json:"id"`
	CampaignID        string     `json:"campaign_id"`
	ContactID         string     `json:"contact_id"`
	RecipientEmail    string     `json:"recipient_email"`
	RecipientName     string     `json:"recipient_name"`
	Subject           string     `json:"subject"`
	Status            string     `json:"status"`
	ProviderMessageID *string    `json:"provider_message_id,omitempty"`
	ErrorMessage      *string    `json:"error_message,omitempty"`
	SentAt            *time.Time `json:"sent_at"`
	OpenedAt          *time.Time `json:"opened_at"`
	ClickedAt         *time.Time `json:"clicked_at"`
	CreatedAt         time.Time  `json:"created_at"`
}

// MapSendRecordToResponse converts a domain send record to an API response.
func MapSendRecordToResponse(record *historyDomain.SendRecord) SendRecordResponse {
	return SendRecordResponse{
		ID:                record.ID.String(),
		CampaignID:        record.CampaignID.String(),
		ContactID:         record.ContactID.String(),
		RecipientEmail:    record.RecipientEmail,
		RecipientName:     record.RecipientName,
		Subject:           record.Subject,
		Status:            string(record.Status),
		ProviderMessageID: record.ProviderMessageID,
		ErrorMessage:      record.ErrorMessage,
		SentAt:            record.SentAt,
		OpenedAt:          record.OpenedAt,
		ClickedAt:         record.ClickedAt,
		CreatedAt:         record.CreatedAt,
	}
}

// SummaryResponse represents engagement totals.
type SummaryResponse struct {
	TotalSent    int64   `json:"total_sent"`
	TotalOpened  int64   `json:"total_opened"`
	TotalClicked int64   `json:"total_clicked"`
	TotalFailed  int64   `json:"total_failed"`
	OpenRate     float64 `json:"open_rate"`
	ClickRate    float64 `json:"click_rate"`
}

// ListSendRecordsResponse represents a page of send records.
type ListSendRecordsResponse struct {
	Data       []SendRecordResponse `json:"data"`
	Pagination httputil.Pagination  `json:"pagination"`
	Summary    *SummaryResponse     `json:"summary,omitempty"`
}

// MapSendRecordsToListResponse converts a page of send records to an API response.
// A nil summary is omitted.
func MapSendRecordsToListResponse(
	records []*historyDomain.SendRecord,
	pagination httputil.Pagination,
	summary *historyDomain.Summary,
) ListSendRecordsResponse {
	data := make([]SendRecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, MapSendRecordToResponse(record))
	}

	response := ListSendRecordsResponse{Data: data, Pagination: pagination}
	if summary != nil {
		response.Summary = &SummaryResponse{
			TotalSent:    summary.TotalSent,
			TotalOpened:  summary.TotalOpened,
			TotalClicked: summary.TotalClicked,
			TotalFailed:  summary.TotalFailed,
			OpenRate:     summary.OpenRate,
			ClickRate:    summary.ClickRate,
		}
	}
	return response
}
