package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroSentinel/internal/cache"
	"AstroSentinel/internal/dashboard"
	"AstroSentinel/internal/logger"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/recorder"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.Component(logger.Discard(), "api")
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "api.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })

	svc := dashboard.NewService(rec, cache.NewMemoryCache(), nil, time.Hour, log)
	h := NewHandler(svc, log)
	h.now = func() time.Time { return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) }
	return SetupRoutes(h)
}

func get(t *testing.T, router http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	rr := get(t, newTestRouter(t), "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}

func TestGetSeed(t *testing.T) {
	router := newTestRouter(t)
	rr := get(t, router, "/api/v1/seed?symbol=aapl&date=2024-01-01&timeframe=monthly")
	require.Equal(t, http.StatusOK, rr.Code)

	var body seedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "AAPL|2024-01-01|monthly", body.Canonical)
	assert.NotZero(t, body.Seed)

	again := get(t, router, "/api/v1/seed?symbol=AAPL&date=2024-01-01&timeframe=monthly")
	var body2 seedResponse
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &body2))
	assert.Equal(t, body.Seed, body2.Seed)
}

func TestGetSeries(t *testing.T) {
	rr := get(t, newTestRouter(t), "/api/v1/series?symbol=AAPL&date=2024-01-01&timeframe=monthly")
	require.Equal(t, http.StatusOK, rr.Code)

	var series model.PriceSeries
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &series))
	assert.Len(t, series.Points, 31)
	assert.Equal(t, model.Monthly, series.Timeframe)
	assert.Equal(t, 180.0, series.BasePrice)
}

func TestGetSeries_Defaults(t *testing.T) {
	rr := get(t, newTestRouter(t), "/api/v1/series?symbol=AAPL")
	require.Equal(t, http.StatusOK, rr.Code)
	var series model.PriceSeries
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &series))
	assert.Len(t, series.Points, 390)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC), series.Points[0].Timestamp)
}

func TestGetSeries_InvalidInput(t *testing.T) {
	router := newTestRouter(t)
	tests := []struct {
		url   string
		field string
	}{
		{"/api/v1/series?symbol=AAPL&date=01/01/2024", "date"},
		{"/api/v1/series?symbol=AAPL&timeframe=hourly", "timeframe"},
		{"/api/v1/series?date=2024-01-01", "symbol"},
	}
	for _, tt := range tests {
		rr := get(t, router, tt.url)
		assert.Equal(t, http.StatusBadRequest, rr.Code, tt.url)
		var body errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, tt.field, body.Field, tt.url)
	}
}

func TestGetTransits(t *testing.T) {
	rr := get(t, newTestRouter(t), "/api/v1/transits?date=2024-01-01")
	require.Equal(t, http.StatusOK, rr.Code)
	var table model.TransitTable
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &table))
	assert.Len(t, table, model.TransitRows)
}

func TestGetReportAndHistory(t *testing.T) {
	router := newTestRouter(t)

	rr := get(t, router, "/api/v1/history")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = get(t, router, "/api/v1/report?symbol=UNKNOWN_TICKER&date=2024-01-01&timeframe=weekly")
	require.Equal(t, http.StatusOK, rr.Code)
	var rep model.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Len(t, rep.Series.Points, 35)
	assert.Equal(t, 100.0, rep.Series.BasePrice)
	assert.True(t, rep.Series.Fallback)

	rr = get(t, router, "/api/v1/history?limit=5")
	require.Equal(t, http.StatusOK, rr.Code)
	var entries []model.HistoryEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, rep.RunID, entries[0].RunID)

	rr = get(t, router, "/api/v1/history?limit=zero")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", nil)
	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
