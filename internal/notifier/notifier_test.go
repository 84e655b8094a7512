package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroSentinel/internal/logger"
	"AstroSentinel/internal/model"
)

type fakeTelegram struct {
	mu      sync.Mutex
	sent    []map[string]string
	fail    int
	updates string
}

func (f *fakeTelegram) handler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		if f.fail > 0 {
			f.fail--
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		_ = json.Unmarshal(body, &payload)
		f.sent = append(f.sent, payload)
		w.Write([]byte(`{"ok":true}`))
	case strings.HasSuffix(r.URL.Path, "/getUpdates"):
		w.Write([]byte(f.updates))
	default:
		http.NotFound(w, r)
	}
}

func newTestNotifier(t *testing.T, f *fakeTelegram) *TelegramNotifier {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(f.handler))
	t.Cleanup(srv.Close)
	n := NewTelegramNotifier("token", "42", "", logger.Component(logger.Discard(), "notifier"))
	n.APIBase = srv.URL
	return n
}

func TestSend(t *testing.T) {
	f := &fakeTelegram{}
	n := newTestNotifier(t, f)
	require.NoError(t, n.Send(context.Background(), "<b>hi</b>"))
	require.Len(t, f.sent, 1)
	assert.Equal(t, "42", f.sent[0]["chat_id"])
	assert.Equal(t, "HTML", f.sent[0]["parse_mode"])
	assert.Equal(t, "<b>hi</b>", f.sent[0]["text"])
}

func TestSend_APIError(t *testing.T) {
	f := &fakeTelegram{fail: 1}
	n := newTestNotifier(t, f)
	err := n.Send(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSendWithRetry_RecoversAfterFailure(t *testing.T) {
	f := &fakeTelegram{fail: 1}
	n := newTestNotifier(t, f)
	require.NoError(t, n.SendWithRetry(context.Background(), "x", 2))
	assert.Len(t, f.sent, 1)
}

func TestSendWithRetry_ContextCancelled(t *testing.T) {
	f := &fakeTelegram{fail: 10}
	n := newTestNotifier(t, f)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := n.SendWithRetry(ctx, "x", 3)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPollOnce_DispatchesCommands(t *testing.T) {
	f := &fakeTelegram{updates: `{"ok":true,"result":[
		{"update_id":10,"message":{"text":" /transits 2024-01-01 "}},
		{"update_id":11,"edited_message":{"text":"ignored"}},
		{"update_id":12,"message":{"text":"/quiet"}}
	]}`}
	n := newTestNotifier(t, f)

	var got []string
	handler := func(_ context.Context, cmd string) string {
		got = append(got, cmd)
		if cmd == "/quiet" {
			return ""
		}
		return "reply to " + cmd
	}
	next, err := n.pollOnce(context.Background(), n.Client, 0, handler)
	require.NoError(t, err)
	assert.Equal(t, int64(13), next)
	assert.Equal(t, []string{"/transits 2024-01-01", "/quiet"}, got)
	require.Len(t, f.sent, 1)
	assert.Equal(t, "reply to /transits 2024-01-01", f.sent[0]["text"])
}

func TestPollOnce_RejectsBadResponse(t *testing.T) {
	f := &fakeTelegram{updates: `{"ok":false,"description":"Unauthorized"}`}
	n := newTestNotifier(t, f)
	next, err := n.pollOnce(context.Background(), n.Client, 5, func(context.Context, string) string { return "" })
	assert.Error(t, err)
	assert.Equal(t, int64(5), next)
}

func TestStartPolling_StopsOnCancel(t *testing.T) {
	f := &fakeTelegram{updates: `{"ok":true,"result":[]}`}
	n := newTestNotifier(t, f)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		n.StartPolling(ctx, func(context.Context, string) string { return "" })
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("polling did not stop after cancel")
	}
}

func sampleReport() *model.Report {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.Report{
		Input: model.SeedInput{Symbol: "AAPL", StartDate: start, Timeframe: model.Monthly},
		Series: &model.PriceSeries{
			Symbol: "AAPL", BasePrice: 100, Fallback: true,
			Points: []model.PricePoint{{Timestamp: start, Price: 100.5, EMAFast: 100.4, EMASlow: 100.3}},
		},
		Transits: model.TransitTable{
			{Planet: model.Venus, Aspect: model.Trine, Strength: 0.75, Influence: model.Bullish, ImpactDirection: model.Long, ExpectedChangePct: 2.25},
		},
		Summary: model.SeriesSummary{Last: 100.5, ChangePct: 0.5, High: 100.5, Low: 100.5, Position: 0.5, RSI14: 50},
		Outlook: &model.Outlook{
			Factors:    []model.FactorScore{{Name: "Transits", RawScore: 0.75, Weight: 0.6, Weighted: 0.45, Commentary: "1 bullish / 0 bearish"}},
			TotalScore: 0.45, Label: "Favourable", Disclaimer: "Synthetic.",
		},
	}
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(sampleReport())
	assert.Contains(t, out, "<b>AAPL</b> | 2024-01-01 | monthly")
	assert.Contains(t, out, "Last: 100.50 (+0.50%)")
	assert.Contains(t, out, "default 100 (unknown symbol)")
	assert.Contains(t, out, "🟢 Venus Trine (0.75) → Bullish, Long 2.25%")
	assert.Contains(t, out, "Favourable (+0.450)")
	assert.Contains(t, out, "<i>Synthetic.</i>")
}

func TestFormatHistoryAndDigest(t *testing.T) {
	assert.Equal(t, "No reports recorded yet.", FormatHistory(nil))

	out := FormatHistory([]model.HistoryEntry{{
		Symbol: "AAPL", StartDate: "2024-01-01", Timeframe: "monthly", LastPrice: 181.5, Outlook: "Mixed",
		GeneratedAt: time.Date(2024, 2, 3, 4, 5, 0, 0, time.UTC),
	}})
	assert.Contains(t, out, "02-03 04:05 AAPL 2024-01-01 monthly → 181.50 (Mixed)")

	digest := FormatDigest("2024-01-01", []*model.Report{sampleReport()})
	assert.Contains(t, digest, "AAPL: 100.50 (+0.50%) Favourable")
}
