package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hashversion/koes/internal/metrics"
)

func TestObserveRender(t *testing.T) {
	m := metrics.New()
	m.ObserveRender("/", 2*time.Millisecond, nil)
	m.ObserveRender("/", time.Millisecond, nil)
	m.ObserveRender("/404", time.Millisecond, errors.New("boom"))

	expected := `
# HELP koes_page_renders_total Pages rendered, by route and outcome.
# TYPE koes_page_renders_total counter
koes_page_renders_total{outcome="error",route="/404"} 1
koes_page_renders_total{outcome="ok",route="/"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "koes_page_renders_total"))

	n, err := testutil.GatherAndCount(m.Registry(), "koes_page_render_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveRequest(http.MethodGet, "unmatched", http.StatusNotFound, time.Millisecond)

	expected := `
# HELP koes_http_requests_total HTTP requests served, by method, route pattern and status code.
# TYPE koes_http_requests_total counter
koes_http_requests_total{code="200",method="GET",route="/"} 2
koes_http_requests_total{code="404",method="GET",route="unmatched"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "koes_http_requests_total"))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveRender("/", time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "koes_page_render_duration_seconds_bucket")
}
