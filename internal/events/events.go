// Package events publishes a notification every time a report is generated.
package events

import (
	"context"
	"time"

	"AstroSentinel/internal/model"
)

// EventReportGenerated is the only event type emitted today.
const EventReportGenerated = "REPORT_GENERATED"

// ReportEvent is the JSON payload written to the event stream.
type ReportEvent struct {
	EventType string    `json:"event_type"`
	RunID     string    `json:"run_id"`
	Symbol    string    `json:"symbol"`
	Timeframe string    `json:"timeframe"`
	StartDate string    `json:"start_date"`
	Seed      uint64    `json:"seed"`
	LastPrice float64   `json:"last_price"`
	Outlook   string    `json:"outlook"`
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReportEvent flattens a report into its event payload.
func NewReportEvent(r *model.Report) ReportEvent {
	evt := ReportEvent{
		EventType: EventReportGenerated,
		RunID:     r.RunID,
		Symbol:    r.Input.Symbol,
		Timeframe: r.Input.Timeframe.String(),
		StartDate: r.Input.DateString(),
		Seed:      r.Seed,
		LastPrice: r.Summary.Last,
		Cached:    r.Cached,
		Timestamp: r.GeneratedAt,
	}
	if r.Outlook != nil {
		evt.Outlook = r.Outlook.Label
	}
	return evt
}

// Publisher emits report events.
type Publisher interface {
	PublishReport(ctx context.Context, r *model.Report) error
	Close() error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishReport(context.Context, *model.Report) error { return nil }
func (NoopPublisher) Close() error                                       { return nil }
