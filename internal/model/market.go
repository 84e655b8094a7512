package model

import "time"

// PricePoint is a single synthetic price with its two moving averages.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	EMAFast   float64   `json:"ema_fast"`
	EMASlow   float64   `json:"ema_slow"`
}

// PriceSeries holds a generated price path. It is never mutated after generation.
type PriceSeries struct {
	Symbol    string       `json:"symbol"`
	StartDate time.Time    `json:"start_date"`
	Timeframe Timeframe    `json:"timeframe"`
	Seed      uint64       `json:"seed"`
	BasePrice float64      `json:"base_price"`
	Fallback  bool         `json:"base_price_fallback"`
	Points    []PricePoint `json:"points"`
}

// Prices extracts the price column.
func (s *PriceSeries) Prices() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Price
	}
	return out
}

// Last returns the final point, or a zero point for an empty series.
func (s *PriceSeries) Last() PricePoint {
	if len(s.Points) == 0 {
		return PricePoint{}
	}
	return s.Points[len(s.Points)-1]
}
