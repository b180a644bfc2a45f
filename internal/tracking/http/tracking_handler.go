// Package http serves the public open-pixel and click-redirect endpoints.
package http

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/leadmail/internal/httputil"
	trackingUseCase "github.com/allisson/leadmail/internal/tracking/usecase"
)

// transparentPixel is a 1x1 transparent PNG.
var transparentPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==",
)

// TrackingHandler records opens and clicks. Recording failures never change the response.
type TrackingHandler struct {
	trackingUseCase trackingUseCase.TrackingUseCase
	logger          *slog.Logger
}

// NewTrackingHandler creates a new tracking handler.
func NewTrackingHandler(trackingUseCase trackingUseCase.TrackingUseCase, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		trackingUseCase: trackingUseCase,
		logger:          logger,
	}
}

// OpenHandler records the first open and always serves the pixel.
// GET /track/open/:id - Returns 200 OK image/png.
func (h *TrackingHandler) OpenHandler(c *gin.Context) {
	if recordID, ok := h.parseID(c); ok {
		if err := h.trackingUseCase.RecordOpen(c.Request.Context(), recordID); err != nil {
			h.logFailure("failed to record open", recordID, err)
		}
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "image/png", transparentPixel)
}

// ClickHandler records the first click and redirects to the original link.
// GET /track/click/:id?url= - Returns 302 Found, 400 when url is missing.
func (h *TrackingHandler) ClickHandler(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		httputil.HandleBadRequestGin(c, errors.New("url parameter is required"), h.logger)
		return
	}

	if recordID, ok := h.parseID(c); ok {
		if err := h.trackingUseCase.RecordClick(c.Request.Context(), recordID); err != nil {
			h.logFailure("failed to record click", recordID, err)
		}
	}

	c.Redirect(http.StatusFound, target)
}

func (h *TrackingHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		if h.logger != nil {
			h.logger.Debug("ignoring tracking request with invalid id", slog.String("id", c.Param("id")))
		}
		return uuid.Nil, false
	}
	return recordID, true
}

func (h *TrackingHandler) logFailure(msg string, recordID uuid.UUID, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Error(msg,
		slog.String("record_id", recordID.String()),
		slog.Any("error", err),
	)
}
