package recorder

import "AstroSentinel/internal/model"

// Recorder keeps an append-only log of generated reports. It is never read back to
// rebuild a dashboard; History is informational.
type Recorder interface {
	RecordReport(r *model.Report) error
	Recent(limit int) ([]model.HistoryEntry, error)
	Close() error
}
