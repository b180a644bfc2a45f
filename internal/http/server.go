// Package http provides the HTTP servers and router wiring of the application.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	campaignHTTP "github.com/allisson/leadmail/internal/campaign/http"
	"github.com/allisson/leadmail/internal/config"
	contactHTTP "github.com/allisson/leadmail/internal/contact/http"
	historyHTTP "github.com/allisson/leadmail/internal/history/http"
	"github.com/allisson/leadmail/internal/metrics"
	trackingHTTP "github.com/allisson/leadmail/internal/tracking/http"
)

// Handlers groups the domain handlers mounted by SetupRouter.
type Handlers struct {
	Contacts  *contactHTTP.ContactHandler
	Campaigns *campaignHTTP.CampaignHandler
	History   *historyHTTP.HistoryHandler
	Tracking  *trackingHTTP.TrackingHandler
}

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates a new HTTP server. db backs the readiness probe.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with middleware, health probes and every API route.
// ctx bounds background work started by middleware such as the tracking rate limiter.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	contacts := v1.Group("/contacts")
	{
		contacts.POST("", handlers.Contacts.CreateHandler)
		contacts.GET("", handlers.Contacts.ListHandler)
		contacts.GET("/stats", handlers.Contacts.StatsHandler)
		contacts.GET("/:id", handlers.Contacts.GetHandler)
		contacts.PUT("/:id", handlers.Contacts.UpdateHandler)
		contacts.DELETE("/:id", handlers.Contacts.DeleteHandler)
	}

	campaigns := v1.Group("/campaigns")
	{
		campaigns.POST("", handlers.Campaigns.CreateHandler)
		campaigns.GET("", handlers.Campaigns.ListHandler)
		campaigns.GET("/stats", handlers.Campaigns.StatsHandler)
		campaigns.GET("/:id", handlers.Campaigns.GetHandler)
		campaigns.PUT("/:id", handlers.Campaigns.UpdateHandler)
		campaigns.DELETE("/:id", handlers.Campaigns.DeleteHandler)
		campaigns.POST("/:id/send", handlers.Campaigns.SendHandler)
		campaigns.POST("/:id/cancel", handlers.Campaigns.CancelHandler)
		campaigns.GET("/:id/history", handlers.History.ListByCampaignHandler)
	}

	v1.GET("/history", handlers.History.ListHandler)

	track := router.Group("/track")
	if cfg.TrackingRateLimitEnabled {
		track.Use(trackingHTTP.RateLimitMiddleware(
			ctx,
			cfg.TrackingRateLimitRequestsPerSec,
			cfg.TrackingRateLimitBurst,
			s.logger,
		))
	}
	{
		track.GET("/open/:id", handlers.Tracking.OpenHandler)
		track.GET("/click/:id", handlers.Tracking.ClickHandler)
	}

	s.router = router
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// GetHandler returns the configured router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
