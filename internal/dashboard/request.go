package dashboard

import (
	"time"

	"AstroSentinel/internal/model"
)

// Request is the raw, unvalidated selection coming from a CLI flag set, URL query or chat command.
type Request struct {
	Symbol    string `json:"symbol"`
	Date      string `json:"date"`
	Timeframe string `json:"timeframe"`
}

// SeedInput validates the request. Dates after today (per now) are rejected.
func (r Request) SeedInput(now time.Time) (model.SeedInput, error) {
	start, err := parseNotFuture(r.Date, now)
	if err != nil {
		return model.SeedInput{}, err
	}
	tf, err := model.ParseTimeframe(r.Timeframe)
	if err != nil {
		return model.SeedInput{}, err
	}
	return model.NewSeedInput(r.Symbol, start, tf)
}

func parseNotFuture(s string, now time.Time) (time.Time, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if d.After(model.CalendarDay(now)) {
		return time.Time{}, &model.InvalidInputError{Field: "date", Value: s, Reason: "date is in the future"}
	}
	return d, nil
}
