package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"AstroSentinel/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
)

var influenceColors = map[model.Influence]lipgloss.Color{
	model.Bullish:       "42",
	model.MildlyBullish: "114",
	model.Neutral:       "250",
	model.MildlyBearish: "209",
	model.Bearish:       "196",
}

func influenceStyle(in model.Influence) lipgloss.Style {
	c, ok := influenceColors[in]
	if !ok {
		return cellStyle
	}
	return cellStyle.Foreground(c)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(headers...)
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func pct(v float64) string { return fmt.Sprintf("%+.2f%%", v) }

func timeLayout(tf model.Timeframe) string {
	if tf == model.Intraday {
		return "2006-01-02 15:04"
	}
	return model.DateLayout
}

func renderSeries(s *model.PriceSeries, tail int) string {
	points := s.Points
	if tail > 0 && tail < len(points) {
		points = points[len(points)-tail:]
	}
	t := newTable("Time", "Price", "EMA20", "EMA50").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	layout := timeLayout(s.Timeframe)
	for _, p := range points {
		t.Row(p.Timestamp.Format(layout), money(p.Price), money(p.EMAFast), money(p.EMASlow))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s from %s", s.Symbol, s.Timeframe, s.StartDate.Format(model.DateLayout))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("seed %d, base %s", s.Seed, money(s.BasePrice)))
	if s.Fallback {
		b.WriteString(mutedStyle.Render(" (unknown symbol, default base)"))
	}
	b.WriteString("\n")
	b.WriteString(t.String())
	return b.String()
}

func renderTransits(rows model.TransitTable) string {
	t := newTable("Planet", "Aspect", "Strength", "Influence", "Direction", "Expected").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(rows) {
				return influenceStyle(rows[row].Influence)
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(string(r.Planet), string(r.Aspect), money(r.Strength), string(r.Influence), string(r.ImpactDirection), pct(r.ExpectedChangePct))
	}
	return t.String()
}

func renderReport(r *model.Report) string {
	var b strings.Builder
	title := fmt.Sprintf("%s | %s | %s", r.Input.Symbol, r.Input.DateString(), r.Input.Timeframe)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("run %s, seed %d", r.RunID, r.Seed))
	if r.Cached {
		b.WriteString(mutedStyle.Render(" (cached)"))
	}
	b.WriteString("\n\n")

	sum := r.Summary
	st := newTable("First", "Last", "Change", "High", "Low", "RSI14", "Trend").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 6 {
				return influenceStyle(sum.Trend)
			}
			return cellStyle
		}).
		Row(money(sum.First), money(sum.Last), pct(sum.ChangePct), money(sum.High), money(sum.Low), money(sum.RSI14), string(sum.Trend))
	b.WriteString(st.String())
	b.WriteString("\n\n")
	b.WriteString(renderTransits(r.Transits))
	b.WriteString("\n")

	if r.Outlook != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Outlook: %s (%+.2f)", r.Outlook.Label, r.Outlook.TotalScore)))
		b.WriteString("\n")
		for _, f := range r.Outlook.Factors {
			b.WriteString(fmt.Sprintf("  %-10s %+.2f x %.2f  %s\n", f.Name, f.RawScore, f.Weight, f.Commentary))
		}
		b.WriteString(mutedStyle.Render(r.Outlook.Disclaimer))
	}
	return b.String()
}

func renderHistory(entries []model.HistoryEntry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("no reports recorded")
	}
	t := newTable("Generated", "Symbol", "Date", "Timeframe", "Points", "Transits", "Last", "Outlook").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range entries {
		t.Row(e.GeneratedAt.Format("2006-01-02 15:04:05"), e.Symbol, e.StartDate, e.Timeframe,
			strconv.Itoa(e.Points), strconv.Itoa(e.Transits), money(e.LastPrice), e.Outlook)
	}
	return t.String()
}
