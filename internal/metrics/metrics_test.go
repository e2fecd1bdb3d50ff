package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Scrape(t *testing.T) {
	m := New()
	m.ObserveAnalysis("success", 42)
	m.ObserveAnalysis("error", 3)
	m.ObserveSaveFailure()
	m.ObserveHTTPRequest("/analyze-resume", "POST", "200")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `skillbridge_resume_analyzer_analyses_total{status="success"} 1`)
	assert.Contains(t, body, `skillbridge_resume_analyzer_analyses_total{status="error"} 1`)
	assert.Contains(t, body, "skillbridge_resume_analyzer_history_save_failures_total 1")
	assert.Contains(t, body, "skillbridge_resume_analyzer_http_requests_total")
	assert.NotContains(t, body, "go_goroutines", "runtime metrics stay off the custom registry")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()
	a.ObserveSaveFailure()

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.NotContains(t, rec.Body.String(), "history_save_failures_total 1")
}
