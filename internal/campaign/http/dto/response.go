package dto

import (
	"time"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	"github.com/allisson/leadmail/internal/httputil"
)

// CampaignResponse represents a campaign in API responses.
type CampaignResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Subject         string     `json:"subject"`
	Content         string     `json:"content"`
	Status          string     `json:"status"`
	TotalRecipients int        `json:"total_recipients"`
	EmailsSent      int        `json:"emails_sent"`
	EmailsFailed    int        `json:"emails_failed"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	SentAt          *time.Time `json:"sent_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// MapCampaignToResponse converts a domain campaign to an API response.
func MapCampaignToResponse(campaign *campaignDomain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:              campaign.ID.String(),
		Name:            campaign.Name,
		Subject:         campaign.Subject,
		Content:         campaign.Content,
		Status:          string(campaign.Status),
		TotalRecipients: campaign.TotalRecipients,
		EmailsSent:      campaign.EmailsSent,
		EmailsFailed:    campaign.EmailsFailed,
		ScheduledAt:     campaign.ScheduledAt,
		SentAt:          campaign.SentAt,
		CompletedAt:     campaign.CompletedAt,
		ErrorMessage:    campaign.ErrorMessage,
		CreatedAt:       campaign.CreatedAt,
		UpdatedAt:       campaign.UpdatedAt,
	}
}

// ListCampaignsResponse represents a page of campaigns.
type ListCampaignsResponse struct {
	Data       []CampaignResponse  `json:"data"`
	Pagination httputil.Pagination `json:"pagination"`
}

// MapCampaignsToListResponse converts a page of domain campaigns to an API response.
func MapCampaignsToListResponse(
	campaigns []*campaignDomain.Campaign,
	pagination httputil.Pagination,
) ListCampaignsResponse {
	data := make([]CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		data = append(data, MapCampaignToResponse(campaign))
	}
	return ListCampaignsResponse{Data: data, Pagination: pagination}
}

// StatsResponse represents aggregate campaign counters.
type StatsResponse struct {
	TotalCampaigns    int64            `json:"total_campaigns"`
	TotalEmailsSent   int64            `json:"total_emails_sent"`
	TotalEmailsFailed int64            `json:"total_emails_failed"`
	SuccessRate       float64          `json:"success_rate"`
	ByStatus          map[string]int64 `json:"by_status"`
}

// MapStatsToResponse converts domain stats to an API response.
func MapStatsToResponse(stats *campaignDomain.Stats) StatsResponse {
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return StatsResponse{
		TotalCampaigns:    stats.TotalCampaigns,
		TotalEmailsSent:   stats.TotalEmailsSent,
		TotalEmailsFailed: stats.TotalEmailsFailed,
		SuccessRate:       stats.SuccessRate,
		ByStatus:          byStatus,
	}
}
