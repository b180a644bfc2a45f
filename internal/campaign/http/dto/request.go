// Package dto provides data transfer objects for campaign HTTP request and response handling.
package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	customValidation "github.com/allisson/leadmail/internal/validation"
)

// CreateCampaignRequest contains the parameters for creating a campaign.
// Without draft or a future scheduled_at the campaign starts sending immediately.
type CreateCampaignRequest struct {
	Name         string     `json:"name"`
	Subject      string     `json:"subject"`
	Content      string     `json:"content"`
	RecipientIDs []string   `json:"recipient_ids"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	Draft        bool       `json:"draft"`
}

// Validate checks if the create campaign request is valid.
func (r *CreateCampaignRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(2, 100),
		),
		validation.Field(&r.Subject,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 200),
		),
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.RecipientIDs,
			validation.Required,
			validation.Each(validation.Required, customValidation.UUID),
		),
	)
}

// ToInput converts the request into use case input. Validate must succeed first.
func (r *CreateCampaignRequest) ToInput() campaignDomain.CreateCampaignInput {
	ids := make([]uuid.UUID, 0, len(r.RecipientIDs))
	for _, raw := range r.RecipientIDs {
		ids = append(ids, uuid.MustParse(raw))
	}
	return campaignDomain.CreateCampaignInput{
		Name:         r.Name,
		Subject:      r.Subject,
		Content:      r.Content,
		RecipientIDs: ids,
		ScheduledAt:  r.ScheduledAt,
		Draft:        r.Draft,
	}
}

// UpdateCampaignRequest contains the editable fields of a draft or scheduled campaign.
type UpdateCampaignRequest struct {
	Name          *string    `json:"name"`
	Subject       *string    `json:"subject"`
	Content       *string    `json:"content"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	ClearSchedule bool       `json:"clear_schedule"`
}

// Validate checks if the update campaign request is valid.
func (r *UpdateCampaignRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			validation.Length(2, 100),
		),
		validation.Field(&r.Subject,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			validation.Length(1, 200),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
		),
		validation.Field(&r.ScheduledAt,
			validation.When(r.ClearSchedule, validation.Nil.Error("cannot be combined with clear_schedule")),
		),
	)
}

// ToInput converts the request into use case input.
func (r *UpdateCampaignRequest) ToInput() campaignDomain.UpdateCampaignInput {
	return campaignDomain.UpdateCampaignInput{
		Name:          r.Name,
		Subject:       r.Subject,
		Content:       r.Content,
		ScheduledAt:   r.ScheduledAt,
		ClearSchedule: r.ClearSchedule,
	}
}
