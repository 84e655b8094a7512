package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroSentinel/internal/logger"
	"AstroSentinel/internal/model"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "astro.db"), logger.Component(logger.Discard(), "recorder"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func sampleReport(runID, symbol string, at time.Time) *model.Report {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.Report{
		RunID: runID,
		Input: model.SeedInput{Symbol: symbol, StartDate: start, Timeframe: model.Monthly},
		Seed:  ^uint64(0) - 7,
		Series: &model.PriceSeries{
			Symbol:    symbol,
			BasePrice: 180,
			Points:    []model.PricePoint{{Timestamp: start, Price: 180.5}, {Timestamp: start.AddDate(0, 0, 1), Price: 181.25}},
		},
		Transits: model.TransitTable{
			{Planet: model.Jupiter, Aspect: model.Trine, Strength: 0.9, Influence: model.Bullish, ImpactDirection: model.Long, ExpectedChangePct: 2.5},
			{Planet: model.Mars, Aspect: model.Square, Strength: 0.6, Influence: model.Bearish, ImpactDirection: model.Short, ExpectedChangePct: 1.1},
		},
		Summary:     model.SeriesSummary{First: 180.5, Last: 181.25, High: 181.25, Low: 180.5, RSI14: 50, Trend: model.Bullish},
		Outlook:     &model.Outlook{TotalScore: 0.3, Label: "Favourable"},
		GeneratedAt: at,
	}
}

func TestSQLiteRecorder_RecordAndRecent(t *testing.T) {
	r := newTestRecorder(t)
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, r.RecordReport(sampleReport("run-1", "AAPL", now.Add(-time.Minute))))
	require.NoError(t, r.RecordReport(sampleReport("run-2", "MSFT", now)))

	entries, err := r.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	latest := entries[0]
	assert.Equal(t, "run-2", latest.RunID)
	assert.Equal(t, "MSFT", latest.Symbol)
	assert.Equal(t, "2024-01-01", latest.StartDate)
	assert.Equal(t, "monthly", latest.Timeframe)
	assert.Equal(t, ^uint64(0)-7, latest.Seed)
	assert.Equal(t, 2, latest.Points)
	assert.Equal(t, 181.25, latest.LastPrice)
	assert.Equal(t, "Favourable", latest.Outlook)
	assert.Equal(t, now, latest.GeneratedAt)

	n, err := r.transitCount("run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, entries[1].Transits)
}

func TestSQLiteRecorder_RecentLimit(t *testing.T) {
	r := newTestRecorder(t)
	now := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.RecordReport(sampleReport(id, "AAPL", now.Add(time.Duration(i)*time.Second))))
	}
	entries, err := r.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].RunID)
	assert.Equal(t, "b", entries[1].RunID)
}

func TestSQLiteRecorder_DuplicateRunIDRollsBack(t *testing.T) {
	r := newTestRecorder(t)
	rep := sampleReport("dup", "AAPL", time.Now())
	require.NoError(t, r.RecordReport(rep))
	assert.Error(t, r.RecordReport(rep))

	n, err := r.transitCount("dup")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "second insert must not leave orphan transits")
}

func TestSQLiteRecorder_ReopenKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astro.db")
	log := logger.Component(logger.Discard(), "recorder")
	r1, err := NewSQLiteRecorder(path, log)
	require.NoError(t, err)
	require.NoError(t, r1.RecordReport(sampleReport("keep", "SPY", time.Now())))
	require.NoError(t, r1.Close())

	r2, err := NewSQLiteRecorder(path, log)
	require.NoError(t, err)
	defer r2.Close()
	entries, err := r2.Recent(5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordReport(&model.Report{}))
	entries, err := r.Recent(5)
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, r.Close())
}
