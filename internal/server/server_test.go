package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquawatt/hydrocalc/internal/config"
	"github.com/aquawatt/hydrocalc/internal/hydro"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.New(), zerolog.Nop(), prometheus.NewRegistry())
}

const validBody = `{
	"head_m": 50,
	"flow_m3s": 100,
	"turbine_type": "francis",
	"efficiency": 0.90,
	"electricity_price": 80,
	"project_lifetime": 30,
	"discount_rate": 0.06,
	"capacity_factor": 0.50,
	"capex_per_kw": 3000,
	"om_fraction": 0.025
}`

func TestHandleEstimate(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))

	var res hydro.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 49050.0, res.PowerGeneration.TheoreticalPowerKw, 1e-6)
	assert.Greater(t, res.EconomicMetrics.Npv, 0.0)
}

func TestHandleEstimate_TracePropagation(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", strings.NewReader(validBody))
	req.Header.Set("X-Trace-Id", "trace-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-Id"))
}

func TestHandleEstimate_InvalidInput(t *testing.T) {
	srv := newTestServer(t)

	body := strings.Replace(validBody, `"head_m": 50`, `"head_m": -50`, 1)
	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "head_m", resp.Field)
	assert.Contains(t, resp.Error, "head_m")
}

func TestHandleEstimate_MalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEstimate_UnknownField(t *testing.T) {
	srv := newTestServer(t)

	body := strings.Replace(validBody, `"head_m"`, `"head_meters"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEstimate_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimate", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHandleReport(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/report", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "HYDROPOWER GENERATION ANALYSIS REPORT")
	assert.Contains(t, rec.Body.String(), "Status: HIGHLY VIABLE")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
