package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"cryptodash/internal/model"
)

// SQLiteRecorder persists observed data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers (Grafana etc.) don't block the poller.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			slug           TEXT NOT NULL,
			usd_price      REAL,
			pct_change_24h REAL,
			volume_24h     REAL,
			market_cap     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_slug_ts ON quotes(slug, timestamp)`,

		`CREATE TABLE IF NOT EXISTS alert_triggers (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			alert_id  TEXT,
			slug      TEXT,
			threshold REAL,
			price     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alert_triggers_ts ON alert_triggers(timestamp)`,

		`CREATE TABLE IF NOT EXISTS sentiment_readings (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			value          INTEGER,
			classification TEXT,
			estimated      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentiment_ts ON sentiment_readings(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuotes(quotes []model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO quotes
		(timestamp, slug, usd_price, pct_change_24h, volume_24h, market_cap)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, q := range quotes {
		if _, err := stmt.Exec(q.ObservedAt.Unix(), q.Slug, q.USDPrice,
			q.PctChange24h, q.Volume24h, q.MarketCap); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordAlertTrigger(evt *AlertTriggerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO alert_triggers
		(timestamp, alert_id, slug, threshold, price)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.AlertID, evt.Slug, evt.Threshold, evt.Price,
	)
	return err
}

func (r *SQLiteRecorder) RecordSentiment(reading model.FearGreedReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	estimated := 0
	if reading.Estimated {
		estimated = 1
	}
	_, err := r.db.Exec(`INSERT INTO sentiment_readings
		(timestamp, value, classification, estimated)
		VALUES (?,?,?,?)`,
		reading.FetchedAt.Unix(), reading.Value, reading.Classification, estimated,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
