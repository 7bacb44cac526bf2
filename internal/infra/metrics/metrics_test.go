package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP(http.MethodGet, "/api/businesses/:slug", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/businesses/:slug", http.StatusOK, 30*time.Millisecond)
	m.ObserveHTTP(http.MethodPost, "/api/orders", http.StatusCreated, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/businesses/:slug", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/orders", "201")), 0)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `api_http_requests_total{method="GET",path="/health",status="200"} 1`)
	assert.Contains(t, string(body), "api_http_request_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}
