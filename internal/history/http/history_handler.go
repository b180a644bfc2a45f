// Package http provides HTTP handlers for the send history.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	historyDomain "github.com/allisson/leadmail/internal/history/domain"
	"github.com/allisson/leadmail/internal/history/http/dto"
	historyUseCase "github.com/allisson/leadmail/internal/history/usecase"
	"github.com/allisson/leadmail/internal/httputil"
)

const (
	defaultCampaignHistoryLimit = 10
	defaultHistoryLimit         = 20
)

// HistoryHandler handles HTTP requests for the send history.
type HistoryHandler struct {
	historyUseCase historyUseCase.HistoryUseCase
	logger         *slog.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(historyUseCase historyUseCase.HistoryUseCase, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyUseCase: historyUseCase,
		logger:         logger,
	}
}

// ListByCampaignHandler lists the send records of one campaign, newest first.
// GET /v1/campaigns/:id/history?status=&page=&limit= - Returns 200 OK.
func (h *HistoryHandler) ListByCampaignHandler(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid campaign ID format: must be a valid UUID"),
			h.logger)
		return
	}

	page, limit, err := httputil.ParsePagination(c, defaultCampaignHistoryLimit)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	status, err := parseStatus(c.Query("status"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	records, total, err := h.historyUseCase.ListByCampaign(c.Request.Context(), campaignID, historyDomain.ListFilter{
		Status: status,
		Offset: httputil.Offset(page, limit),
		Limit:  limit,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(
		http.StatusOK,
		dto.MapSendRecordsToListResponse(records, httputil.NewPagination(page, limit, total), nil),
	)
}

// ListHandler lists send records across campaigns with an engagement summary.
// GET /v1/history?status=&campaign_id=&search=&sort_by=&order=&page=&limit= - Returns 200 OK.
func (h *HistoryHandler) ListHandler(c *gin.Context) {
	page, limit, err := httputil.ParsePagination(c, defaultHistoryLimit)
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

	records, total, summary, err := h.historyUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(
		http.StatusOK,
		dto.MapSendRecordsToListResponse(records, httputil.NewPagination(page, limit, total), summary),
	)
}

// parseStatus accepts an empty value or "all" as no filter.
func parseStatus(raw string) (historyDomain.Status, error) {
	if raw == "" || raw == "all" {
		return "", nil
	}
	status := historyDomain.Status(raw)
	if !slices.Contains(historyDomain.Statuses, status) {
		return "", fmt.Errorf("invalid status parameter: %s", raw)
	}
	return status, nil
}

func parseListFilter(c *gin.Context) (historyDomain.ListFilter, error) {
	filter := historyDomain.ListFilter{
		Search:   c.Query("search"),
		SortBy:   "created_at",
		SortDesc: true,
	}

	status, err := parseStatus(c.Query("status"))
	if err != nil {
		return filter, err
	}
	filter.Status = status

	if raw := c.Query("campaign_id"); raw != "" {
		campaignID, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid campaign_id parameter: must be a valid UUID")
		}
		filter.CampaignID = &campaignID
	}

	if raw := c.Query("sort_by"); raw != "" {
		if !slices.Contains(historyDomain.SortFields, raw) {
			return filter, fmt.Errorf("invalid sort_by parameter: %s", raw)
		}
		filter.SortBy = raw
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
