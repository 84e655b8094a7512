package recorder

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"AstroSentinel/internal/model"
)

// SQLiteRecorder persists the generation log to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *logrus.Entry
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *logrus.Entry) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.WithField("path", dbPath).Info("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			run_id       TEXT PRIMARY KEY,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			start_date   TEXT NOT NULL,
			timeframe    TEXT NOT NULL,
			seed         TEXT NOT NULL,
			base_price   REAL,
			points       INTEGER,
			first_price  REAL,
			last_price   REAL,
			high         REAL,
			low          REAL,
			rsi14        REAL,
			trend        TEXT,
			total_score  REAL,
			outlook      TEXT,
			cached       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_ts ON reports(timestamp)`,

		`CREATE TABLE IF NOT EXISTS transits (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id              TEXT NOT NULL REFERENCES reports(run_id),
			position            INTEGER NOT NULL,
			planet              TEXT,
			aspect              TEXT,
			strength            REAL,
			influence           TEXT,
			impact_direction    TEXT,
			expected_change_pct REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transits_run ON transits(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordReport(rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	sum := rep.Summary
	var total float64
	var label string
	if rep.Outlook != nil {
		total, label = rep.Outlook.TotalScore, rep.Outlook.Label
	}
	var base float64
	var points int
	if rep.Series != nil {
		base, points = rep.Series.BasePrice, len(rep.Series.Points)
	}

	// seed is stored as text: SQLite integers are signed 64-bit.
	_, err = tx.Exec(`INSERT INTO reports
		(run_id, timestamp, symbol, start_date, timeframe, seed, base_price, points,
		 first_price, last_price, high, low, rsi14, trend, total_score, outlook, cached)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rep.RunID, rep.GeneratedAt.Unix(), rep.Input.Symbol, rep.Input.DateString(),
		rep.Input.Timeframe.String(), strconv.FormatUint(rep.Seed, 10), base, points,
		sum.First, sum.Last, sum.High, sum.Low, sum.RSI14, string(sum.Trend),
		total, label, rep.Cached,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	for i, row := range rep.Transits {
		if _, err := tx.Exec(`INSERT INTO transits
			(run_id, position, planet, aspect, strength, influence, impact_direction, expected_change_pct)
			VALUES (?,?,?,?,?,?,?,?)`,
			rep.RunID, i, string(row.Planet), string(row.Aspect), row.Strength,
			string(row.Influence), string(row.ImpactDirection), row.ExpectedChangePct,
		); err != nil {
			return fmt.Errorf("insert transit %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Recent(limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(`SELECT run_id, timestamp, symbol, start_date, timeframe, seed,
		points, last_price, outlook,
		(SELECT COUNT(*) FROM transits t WHERE t.run_id = reports.run_id)
		FROM reports ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		var ts int64
		var seedText string
		if err := rows.Scan(&e.RunID, &ts, &e.Symbol, &e.StartDate, &e.Timeframe, &seedText,
			&e.Points, &e.LastPrice, &e.Outlook, &e.Transits); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		if e.Seed, err = strconv.ParseUint(seedText, 10, 64); err != nil {
			return nil, fmt.Errorf("parse seed %q: %w", seedText, err)
		}
		e.GeneratedAt = time.Unix(ts, 0).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// transitCount returns how many transit rows are stored for runID.
func (r *SQLiteRecorder) transitCount(runID string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM transits WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
