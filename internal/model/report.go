package model

import "time"

// SeriesSummary holds the headline numbers computed from a generated series.
type SeriesSummary struct {
	First     float64   `json:"first"`
	Last      float64   `json:"last"`
	ChangePct float64   `json:"change_pct"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Position  float64   `json:"position"` // 0.0 ~ 1.0 within [Low, High]
	RSI14     float64   `json:"rsi14"`
	Trend     Influence `json:"trend"`
}

// FactorScore is a single scored input of the outlook.
type FactorScore struct {
	Name       string  `json:"name"`
	RawScore   float64 `json:"raw_score"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
	Commentary string  `json:"commentary"`
}

// Outlook is the decorative verdict attached to a report.
type Outlook struct {
	Factors    []FactorScore `json:"factors"`
	TotalScore float64       `json:"total_score"`
	Label      string        `json:"label"`
	Disclaimer string        `json:"disclaimer"`
}

// Report bundles everything one generation produces for presentation.
type Report struct {
	RunID       string        `json:"run_id"`
	Input       SeedInput     `json:"input"`
	Seed        uint64        `json:"seed"`
	Series      *PriceSeries  `json:"series"`
	Transits    TransitTable  `json:"transits"`
	Summary     SeriesSummary `json:"summary"`
	Outlook     *Outlook      `json:"outlook"`
	GeneratedAt time.Time     `json:"generated_at"`
	Cached      bool          `json:"cached"`
}

// HistoryEntry is one row of the generation log.
type HistoryEntry struct {
	RunID       string    `json:"run_id"`
	Symbol      string    `json:"symbol"`
	StartDate   string    `json:"start_date"`
	Timeframe   string    `json:"timeframe"`
	Seed        uint64    `json:"seed"`
	Points      int       `json:"points"`
	Transits    int       `json:"transits"`
	LastPrice   float64   `json:"last_price"`
	Outlook     string    `json:"outlook"`
	GeneratedAt time.Time `json:"generated_at"`
}
