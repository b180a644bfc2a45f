// Package dto provides data transfer objects for contact HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	customValidation "github.com/allisson/leadmail/internal/validation"
)

// CreateContactRequest contains the parameters for creating a contact.
type CreateContactRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes"`
	Source    *string `json:"source"`
	LeadScore int     `json:"lead_score"`
}

// Validate checks if the create contact request is valid.
func (r *CreateContactRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(1, 255),
		),
		validation.Field(&r.Phone, customValidation.Phone),
		validation.Field(&r.Company, validation.Length(0, 100)),
		validation.Field(&r.Status, validation.In(statusValues()...)),
		validation.Field(&r.Source, validation.Length(0, 100)),
		validation.Field(&r.LeadScore, validation.Min(0), validation.Max(100)),
	)
}

// ToInput converts the request into use case input.
func (r *CreateContactRequest) ToInput() contactDomain.CreateContactInput {
	return contactDomain.CreateContactInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Status:    contactDomain.Status(r.Status),
		Notes:     r.Notes,
		Source:    r.Source,
		LeadScore: r.LeadScore,
	}
}

// UpdateContactRequest contains the fields that may change on a contact.
// Omitted fields keep their current value.
type UpdateContactRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
	Source    *string `json:"source"`
	LeadScore *int    `json:"lead_score"`
}

// Validate checks if the update contact request is valid.
func (r *UpdateContactRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty,
			customValidation.Email,
			validation.Length(1, 255),
		),
		validation.Field(&r.Phone, customValidation.Phone),
		validation.Field(&r.Company, validation.Length(0, 100)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(statusValues()...)),
		validation.Field(&r.Source, validation.Length(0, 100)),
		validation.Field(&r.LeadScore, validation.Min(0), validation.Max(100)),
	)
}

// ToInput converts the request into use case input.
func (r *UpdateContactRequest) ToInput() contactDomain.UpdateContactInput {
	input := contactDomain.UpdateContactInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		Notes:     r.Notes,
		Source:    r.Source,
		LeadScore: r.LeadScore,
	}
	if r.Status != nil {
		status := contactDomain.Status(*r.Status)
		input.Status = &status
	}
	return input
}

func statusValues() []interface{} {
	values := make([]interface{}, len(contactDomain.Statuses))
	for i, s := range contactDomain.Statuses {
		values[i] = string(s)
	}
	return values
}
