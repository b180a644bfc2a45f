// Package http provides HTTP handlers for the contact directory.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	"github.com/allisson/leadmail/internal/contact/http/dto"
	contactUseCase "github.com/allisson/leadmail/internal/contact/usecase"
	"github.com/allisson/leadmail/internal/httputil"
	customValidation "github.com/allisson/leadmail/internal/validation"
)

const defaultContactPageLimit = 20

// ContactHandler handles HTTP requests for contact management.
type ContactHandler struct {
	contactUseCase contactUseCase.ContactUseCase
	logger         *slog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactUseCase contactUseCase.ContactUseCase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

// CreateHandler creates a new contact.
// POST /v1/contacts - Returns 201 Created.
func (h *ContactHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	contact, err := h.contactUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapContactToResponse(contact))
}

// GetHandler retrieves a contact by ID.
// GET /v1/contacts/:id - Returns 200 OK.
func (h *ContactHandler) GetHandler(c *gin.Context) {
	contactID, ok := h.parseID(c)
	if !ok {
		return
	}

	contact, err := h.contactUseCase.Get(c.Request.Context(), contactID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapContactToResponse(contact))
}

// ListHandler lists contacts filtered by status and a name/email/company search.
// GET /v1/contacts?status=&search=&page=&limit= - Returns 200 OK.
func (h *ContactHandler) ListHandler(c *gin.Context) {
	page, limit, err := httputil.ParsePagination(c, defaultContactPageLimit)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	status := contactDomain.Status(c.Query("status"))
	if status != "" && !status.IsValid() {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid status parameter: %s", status), h.logger)
		return
	}

	filter := contactDomain.ListFilter{
		Status: status,
		Search: c.Query("search"),
		Offset: httputil.Offset(page, limit),
		Limit:  limit,
	}

	contacts, total, err := h.contactUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(
		http.StatusOK,
		dto.MapContactsToListResponse(contacts, httputil.NewPagination(page, limit, total)),
	)
}

// UpdateHandler applies a partial update to a contact.
// PUT /v1/contacts/:id - Returns 200 OK.
func (h *ContactHandler) UpdateHandler(c *gin.Context) {
	contactID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	contact, err := h.contactUseCase.Update(c.Request.Context(), contactID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapContactToResponse(contact))
}

// StatsHandler returns contact counts per pipeline stage.
// GET /v1/contacts/stats - Returns 200 OK.
func (h *ContactHandler) StatsHandler(c *gin.Context) {
	stats, err := h.contactUseCase.Stats(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapStatsToResponse(stats))
}

// DeleteHandler removes a contact.
// DELETE /v1/contacts/:id - Returns 204 No Content.
func (h *ContactHandler) DeleteHandler(c *gin.Context) {
	contactID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.contactUseCase.Delete(c.Request.Context(), contactID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *ContactHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid contact ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return contactID, true
}
