// Package http provides HTTP handlers for campaign management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	"github.com/allisson/leadmail/internal/campaign/http/dto"
	campaignUseCase "github.com/allisson/leadmail/internal/campaign/usecase"
	"github.com/allisson/leadmail/internal/httputil"
	customValidation "github.com/allisson/leadmail/internal/validation"
)

const defaultCampaignPageLimit = 10

// CampaignHandler handles HTTP requests for campaign management.
type CampaignHandler struct {
	campaignUseCase campaignUseCase.CampaignUseCase
	logger          *slog.Logger
}

// NewCampaignHandler creates a new campaign handler.
func NewCampaignHandler(campaignUseCase campaignUseCase.CampaignUseCase, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
		logger:          logger,
	}
}

// CreateHandler creates a campaign and, unless it is a draft or scheduled, starts sending it.
// POST /v1/campaigns - Returns 201 Created.
func (h *CampaignHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCampaignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	campaign, err := h.campaignUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCampaignToResponse(campaign))
}

// GetHandler retrieves a campaign by ID.
// GET /v1/campaigns/:id - Returns 200 OK.
func (h *CampaignHandler) GetHandler(c *gin.Context) {
	campaignID, ok := h.parseID(c)
	if !ok {
		return
	}

	campaign, err := h.campaignUseCase.Get(c.Request.Context(), campaignID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCampaignToResponse(campaign))
}

// ListHandler lists campaigns.
// GET /v1/campaigns?status=&search=&sort_by=&order=&page=&limit= - Returns 200 OK.
func (h *CampaignHandler) ListHandler(c *gin.Context) {
	page, limit, err := httputil.ParsePagination(c, defaultCampaignPageLimit)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	filter, err := parseListFilter(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	filter.Offset = httputil.Offset(page, limit)
	filter.Limit = limit

	campaigns, total, err := h.campaignUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(
		http.StatusOK,
		dto.MapCampaignsToListResponse(campaigns, httputil.NewPagination(page, limit, total)),
	)
}

// UpdateHandler edits a draft or scheduled campaign.
// PUT /v1/campaigns/:id - Returns 200 OK, 409 once sending started.
func (h *CampaignHandler) UpdateHandler(c *gin.Context) {
	campaignID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	campaign, err := h.campaignUseCase.Update(c.Request.Context(), campaignID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCampaignToResponse(campaign))
}

// DeleteHandler removes a campaign that is not sending.
// DELETE /v1/campaigns/:id - Returns 204 No Content.
func (h *CampaignHandler) DeleteHandler(c *gin.Context) {
	campaignID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.campaignUseCase.Delete(c.Request.Context(), campaignID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// SendHandler starts sending a draft or scheduled campaign immediately.
// POST /v1/campaigns/:id/send - Returns 200 OK.
func (h *CampaignHandler) SendHandler(c *gin.Context) {
	campaignID, ok := h.parseID(c)
	if !ok {
		return
	}

	campaign, err := h.campaignUseCase.SendNow(c.Request.Context(), campaignID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCampaignToResponse(campaign))
}

// CancelHandler cancels a draft or scheduled campaign.
// POST /v1/campaigns/:id/cancel - Returns 200 OK.
func (h *CampaignHandler) CancelHandler(c *gin.Context) {
	campaignID, ok := h.parseID(c)
	if !ok {
		return
	}

	campaign, err := h.campaignUseCase.Cancel(c.Request.Context(), campaignID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCampaignToResponse(campaign))
}

// StatsHandler returns aggregate counters across campaigns.
// GET /v1/campaigns/stats - Returns 200 OK.
func (h *CampaignHandler) StatsHandler(c *gin.Context) {
	stats, err := h.campaignUseCase.Stats(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapStatsToResponse(stats))
}

func (h *CampaignHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid campaign ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return campaignID, true
}

func parseListFilter(c *gin.Context) (campaignDomain.ListFilter, error) {
	filter := campaignDomain.ListFilter{
		Search:   c.Query("search"),
		SortBy:   campaignDomain.SortByCreatedAt,
		SortDesc: true,
	}

	if raw := c.Query("status"); raw != "" {
		status := campaignDomain.Status(raw)
		if !status.IsValid() {
			return filter, fmt.Errorf("invalid status parameter: %s", raw)
		}
		filter.Status = status
	}

	if raw := c.Query("sort_by"); raw != "" {
		switch sortBy := campaignDomain.SortField(raw); sortBy {
		case campaignDomain.SortByCreatedAt, campaignDomain.SortByName,
			campaignDomain.SortByStatus, campaignDomain.SortBySentAt:
			filter.SortBy = sortBy
		default:
			return filter, fmt.Errorf("invalid sort_by parameter: %s", raw)
		}
	}

	switch strings.ToLower(c.DefaultQuery("order", "desc")) {
	case "desc":
		filter.SortDesc = true
	case "asc":
		filter.SortDesc = false
	default:
		return filter, fmt.Errorf("invalid order parameter: must be asc or desc")
	}

	return filter, nil
}
