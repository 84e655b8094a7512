package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format used for inputs and seed strings.
const DateLayout = "2006-01-02"

// Timeframe selects the length and spacing of a generated price series.
type Timeframe int

const (
	Intraday Timeframe = iota
	Weekly
	Monthly
)

func (tf Timeframe) String() string {
	switch tf {
	case Intraday:
		return "intraday"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("timeframe(%d)", int(tf))
	}
}

// Valid reports whether tf is one of the known timeframes.
func (tf Timeframe) Valid() bool {
	return tf == Intraday || tf == Weekly || tf == Monthly
}

func (tf Timeframe) MarshalText() ([]byte, error) {
	if !tf.Valid() {
		return nil, &InvalidInputError{Field: "timeframe", Value: tf.String(), Reason: "unsupported timeframe"}
	}
	return []byte(tf.String()), nil
}

func (tf *Timeframe) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeframe(string(b))
	if err != nil {
		return err
	}
	*tf = parsed
	return nil
}

// ParseTimeframe accepts the canonical names plus a few dashboard shorthands.
func ParseTimeframe(s string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intraday", "1d", "day":
		return Intraday, nil
	case "weekly", "1w", "week":
		return Weekly, nil
	case "monthly", "1m", "month":
		return Monthly, nil
	}
	return 0, &InvalidInputError{Field: "timeframe", Value: s, Reason: "expected intraday, weekly or monthly"}
}

// ParseDate parses a YYYY-MM-DD calendar date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, &InvalidInputError{Field: "date", Value: s, Reason: "expected YYYY-MM-DD"}
	}
	return d, nil
}

// SeedInput is the (symbol, start date, timeframe) triple every generation is keyed on.
type SeedInput struct {
	Symbol    string    `json:"symbol"`
	StartDate time.Time `json:"start_date"`
	Timeframe Timeframe `json:"timeframe"`
}

// NewSeedInput normalises the symbol, truncates the date to a calendar day and validates the triple.
func NewSeedInput(symbol string, start time.Time, tf Timeframe) (SeedInput, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return SeedInput{}, &InvalidInputError{Field: "symbol", Value: symbol, Reason: "symbol is required"}
	}
	if !tf.Valid() {
		return SeedInput{}, &InvalidInputError{Field: "timeframe", Value: tf.String(), Reason: "unsupported timeframe"}
	}
	if start.IsZero() {
		return SeedInput{}, &InvalidInputError{Field: "date", Reason: "start date is required"}
	}
	return SeedInput{Symbol: sym, StartDate: CalendarDay(start), Timeframe: tf}, nil
}

// DateString renders the start date in DateLayout.
func (in SeedInput) DateString() string {
	return in.StartDate.Format(DateLayout)
}

// CalendarDay drops the clock and zone from t, keeping its calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
