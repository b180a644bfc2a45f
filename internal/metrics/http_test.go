package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("leadmail_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "leadmail_test"))
	router.GET("/v1/campaigns/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.POST("/v1/campaigns", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{})
	})
	router.GET("/track/open/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	requests := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/v1/campaigns/0190b2f4-8c1a-7d3e-9f00-000000000001", http.StatusOK},
		{http.MethodGet, "/v1/campaigns/0190b2f4-8c1a-7d3e-9f00-000000000002", http.StatusOK},
		{http.MethodPost, "/v1/campaigns", http.StatusCreated},
		{http.MethodGet, "/track/open/abc", http.StatusOK},
		{http.MethodGet, "/track/open/def", http.StatusOK},
		{http.MethodGet, "/track/open/ghi", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, r := range requests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(r.method, r.path, nil))
		require.Equal(t, r.code, w.Code, r.path)
	}

	output := scrape(t, provider)

	assertMetricLine(t, output, `leadmail_test_http_requests_total`,
		`method="GET".*path="/v1/campaigns/:id".*status_code="200"`, `2`)
	assertMetricLine(t, output, `leadmail_test_http_requests_total`,
		`method="POST".*path="/v1/campaigns".*status_code="201"`, `1`)
	assertMetricLine(t, output, `leadmail_test_http_requests_total`,
		`method="GET".*path="/track/open/:id".*status_code="200"`, `3`)
	assertMetricLine(t, output, `leadmail_test_http_request_duration_seconds_count`,
		`method="GET".*path="/track/open/:id".*status_code="200"`, `3`)
	assert.NotContains(t, output, "0190b2f4-8c1a-7d3e-9f00-000000000001")
	assert.NotContains(t, output, `path="/track/open/abc"`)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/v1/campaigns/:id", sanitizePath("/v1/campaigns/:id"))
	assert.Equal(t, "/track/click/:id", sanitizePath("/track/click/:id"))
	assert.Equal(t, "unknown", sanitizePath(""))
}
