package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	campaignDomain "github.com/allisson/leadmail/internal/campaign/domain"
	campaignHTTP "github.com/allisson/leadmail/internal/campaign/http"
	campaignMocks "github.com/allisson/leadmail/internal/campaign/usecase/mocks"
	"github.com/allisson/leadmail/internal/config"
	contactHTTP "github.com/allisson/leadmail/internal/contact/http"
	contactMocks "github.com/allisson/leadmail/internal/contact/usecase/mocks"
	historyHTTP "github.com/allisson/leadmail/internal/history/http"
	historyMocks "github.com/allisson/leadmail/internal/history/usecase/mocks"
	"github.com/allisson/leadmail/internal/metrics"
	trackingHTTP "github.com/allisson/leadmail/internal/tracking/http"
	trackingMocks "github.com/allisson/leadmail/internal/tracking/usecase/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestProbes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		router, _ := createFullRouter(t, &config.Config{})

		w := serve(router, http.MethodGet, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("not ready without a database", func(t *testing.T) {
		router, _ := createFullRouter(t, &config.Config{})

		w := serve(router, http.MethodGet, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_ready", response["status"])
		assert.Equal(t, map[string]any{"database": "error"}, response["components"])
	})

	t.Run("ready when the database answers", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing()

		server := NewServer(db, "localhost", 8080, discardLogger())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not ready when the ping fails", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		server := NewServer(db, "localhost", 8080, discardLogger())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRouter_Middleware(t *testing.T) {
	router, _ := createFullRouter(t, &config.Config{})
	engine := router.(*gin.Engine)
	engine.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	t.Run("request id is a uuid", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/health")

		id, err := uuid.Parse(w.Header().Get("X-Request-Id"))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("panics become 500", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/boom")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/v1/leads")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_GetHandler(t *testing.T) {
	server := NewServer(nil, "localhost", 8080, discardLogger())
	assert.Nil(t, server.GetHandler())

	err := server.Start(context.Background())
	assert.EqualError(t, err, "router not configured")

	server.SetupRouter(context.Background(), &config.Config{}, Handlers{
		Contacts:  contactHTTP.NewContactHandler(contactMocks.NewMockContactUseCase(t), discardLogger()),
		Campaigns: campaignHTTP.NewCampaignHandler(campaignMocks.NewMockCampaignUseCase(t), discardLogger()),
		History:   historyHTTP.NewHistoryHandler(historyMocks.NewMockHistoryUseCase(t), discardLogger()),
		Tracking:  trackingHTTP.NewTrackingHandler(trackingMocks.NewMockTrackingUseCase(t), discardLogger()),
	}, nil)
	assert.NotNil(t, server.GetHandler())
}

func TestServer_StartAndShutdown(t *testing.T) {
	server := NewServer(nil, "127.0.0.1", 0, discardLogger())
	server.router = gin.New()

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	// Let ListenAndServe bind before shutting down.
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("leadmail_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := serve(metricsServer.GetHandler(), http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	w = serve(metricsServer.GetHandler(), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(metricsServer.GetHandler(), http.MethodGet, "/v1/contacts")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsServer_WithoutProvider(t *testing.T) {
	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), nil)

	assert.Equal(t, http.StatusOK, serve(metricsServer.GetHandler(), http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusNotFound, serve(metricsServer.GetHandler(), http.MethodGet, "/metrics").Code)
}

// TestServer_NoMetricsEndpoint tests that the main server does NOT expose /metrics.
func TestServer_NoMetricsEndpoint(t *testing.T) {
	router, _ := createFullRouter(t, &config.Config{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

type routerMocks struct {
	contacts  *contactMocks.MockContactUseCase
	campaigns *campaignMocks.MockCampaignUseCase
	history   *historyMocks.MockHistoryUseCase
	tracking  *trackingMocks.MockTrackingUseCase
}

// createFullRouter wires every handler over mocked use cases.
func createFullRouter(t *testing.T, cfg *config.Config) (http.Handler, *routerMocks) {
	t.Helper()
	logger := discardLogger()
	m := &routerMocks{
		contacts:  contactMocks.NewMockContactUseCase(t),
		campaigns: campaignMocks.NewMockCampaignUseCase(t),
		history:   historyMocks.NewMockHistoryUseCase(t),
		tracking:  trackingMocks.NewMockTrackingUseCase(t),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := NewServer(nil, "localhost", 8080, logger)
	server.SetupRouter(ctx, cfg, Handlers{
		Contacts:  contactHTTP.NewContactHandler(m.contacts, logger),
		Campaigns: campaignHTTP.NewCampaignHandler(m.campaigns, logger),
		History:   historyHTTP.NewHistoryHandler(m.history, logger),
		Tracking:  trackingHTTP.NewTrackingHandler(m.tracking, logger),
	}, nil)
	return server.GetHandler(), m
}

// TestRouter_CampaignStatsIsNotAnID verifies the static stats route wins over /:id.
func TestRouter_CampaignStatsIsNotAnID(t *testing.T) {
	router, m := createFullRouter(t, &config.Config{})

	m.campaigns.EXPECT().Stats(mock.Anything).Return(&campaignDomain.Stats{
		TotalCampaigns: 2,
		ByStatus:       map[campaignDomain.Status]int64{campaignDomain.StatusDraft: 2},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_campaigns":2`)
}

// TestRouter_TrackingOpen verifies the pixel route is mounted and rate limited.
func TestRouter_TrackingOpen(t *testing.T) {
	router, m := createFullRouter(t, &config.Config{
		TrackingRateLimitEnabled:        true,
		TrackingRateLimitRequestsPerSec: 1,
		TrackingRateLimitBurst:          1,
	})
	id := uuid.Must(uuid.NewV7())

	m.tracking.EXPECT().RecordOpen(mock.Anything, id).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/track/open/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/track/open/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// TestRouter_HistoryRoutes verifies both history listings are mounted.
func TestRouter_HistoryRoutes(t *testing.T) {
	router, m := createFullRouter(t, &config.Config{})
	campaignID := uuid.Must(uuid.NewV7())

	m.history.EXPECT().ListByCampaign(mock.Anything, campaignID, mock.Anything).Return(nil, int64(0), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/"+campaignID.String()+"/history", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_items":0`)
}
