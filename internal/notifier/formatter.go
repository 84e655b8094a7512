package notifier

import (
	"fmt"
	"html"
	"strings"

	"AstroSentinel/internal/model"
)

var influenceEmoji = map[model.Influence]string{
	model.Bullish:       "🟢",
	model.MildlyBullish: "🟩",
	model.Neutral:       "⚪",
	model.MildlyBearish: "🟧",
	model.Bearish:       "🔴",
}

// FormatReport formats a generated report into a Telegram message.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔮 <b>%s</b> | %s | %s\n\n",
		html.EscapeString(r.Input.Symbol), r.Input.DateString(), r.Input.Timeframe))

	sum := r.Summary
	b.WriteString(fmt.Sprintf("Last: %.2f (%+.2f%%)\n", sum.Last, sum.ChangePct))
	b.WriteString(fmt.Sprintf("Range: %.2f ~ %.2f (position %.0f%%)\n", sum.Low, sum.High, sum.Position*100))
	if r.Series != nil {
		last := r.Series.Last()
		b.WriteString(fmt.Sprintf("EMA20: %.2f | EMA50: %.2f | RSI14: %.0f\n", last.EMAFast, last.EMASlow, sum.RSI14))
		if r.Series.Fallback {
			b.WriteString(fmt.Sprintf("Base price: default %.0f (unknown symbol)\n", r.Series.BasePrice))
		}
	}
	b.WriteString("\n")

	b.WriteString(FormatTransits(r.Transits))

	if o := r.Outlook; o != nil {
		b.WriteString("\n📈 <b>Outlook:</b>\n")
		for _, f := range o.Factors {
			b.WriteString(fmt.Sprintf("  %s(%s): %+.2f (×%.2f) = %+.3f\n",
				f.Name, html.EscapeString(f.Commentary), f.RawScore, f.Weight, f.Weighted))
		}
		b.WriteString("  ─────────────────\n")
		b.WriteString(fmt.Sprintf("  %s (%+.3f)\n\n<i>%s</i>\n", o.Label, o.TotalScore, o.Disclaimer))
	}
	return b.String()
}

// FormatTransits formats a transit table, one line per row.
func FormatTransits(table model.TransitTable) string {
	var b strings.Builder
	b.WriteString("🪐 <b>Transits:</b>\n")
	for _, row := range table {
		b.WriteString(fmt.Sprintf("%s %s %s (%.2f) → %s, %s %.2f%%\n",
			influenceEmoji[row.Influence], row.Planet, row.Aspect, row.Strength,
			row.Influence, row.ImpactDirection, row.ExpectedChangePct))
	}
	return b.String()
}

// FormatHistory formats recent generation log entries.
func FormatHistory(entries []model.HistoryEntry) string {
	if len(entries) == 0 {
		return "No reports recorded yet."
	}
	var b strings.Builder
	b.WriteString("🗂 <b>Recent reports</b>\n\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s %s %s %s → %.2f (%s)\n",
			e.GeneratedAt.Format("01-02 15:04"), html.EscapeString(e.Symbol), e.StartDate, e.Timeframe,
			e.LastPrice, e.Outlook))
	}
	return b.String()
}

// FormatDigest joins per-symbol one-liners for the scheduled digest.
func FormatDigest(date string, reports []*model.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌅 <b>AstroSentinel digest</b> | %s\n\n", date))
	for _, r := range reports {
		label := ""
		if r.Outlook != nil {
			label = r.Outlook.Label
		}
		b.WriteString(fmt.Sprintf("%s: %.2f (%+.2f%%) %s\n",
			html.EscapeString(r.Input.Symbol), r.Summary.Last, r.Summary.ChangePct, label))
	}
	return b.String()
}
