package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"cryptodash/internal/model"
)

// PostgresRecorder persists observed data to PostgreSQL, for deployments that
// already run one instead of a local file.
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder connects, verifies the connection, and runs migrations.
func NewPostgresRecorder(dsn string) (*PostgresRecorder, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	r := &PostgresRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Println("[INFO] postgres recorder connected")
	return r, nil
}

func (r *PostgresRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id             SERIAL PRIMARY KEY,
			timestamp      BIGINT NOT NULL,
			slug           VARCHAR(50) NOT NULL,
			usd_price      DOUBLE PRECISION,
			pct_change_24h DOUBLE PRECISION,
			volume_24h     DOUBLE PRECISION,
			market_cap     DOUBLE PRECISION
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_slug_ts ON quotes(slug, timestamp)`,

		`CREATE TABLE IF NOT EXISTS alert_triggers (
			id        SERIAL PRIMARY KEY,
			timestamp BIGINT NOT NULL,
			alert_id  VARCHAR(40),
			slug      VARCHAR(50),
			threshold DOUBLE PRECISION,
			price     DOUBLE PRECISION
		)`,

		`CREATE TABLE IF NOT EXISTS sentiment_readings (
			id             SERIAL PRIMARY KEY,
			timestamp      BIGINT NOT NULL,
			value          INTEGER,
			classification VARCHAR(30),
			estimated      BOOLEAN
		)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *PostgresRecorder) RecordQuotes(quotes []model.Quote) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO quotes
		(timestamp, slug, usd_price, pct_change_24h, volume_24h, market_cap)
		VALUES ($1,$2,$3,$4,$5,$6)`)
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

func (r *PostgresRecorder) RecordAlertTrigger(evt *AlertTriggerEvent) error {
	_, err := r.db.Exec(`INSERT INTO alert_triggers
		(timestamp, alert_id, slug, threshold, price)
		VALUES ($1,$2,$3,$4,$5)`,
		time.Now().Unix(), evt.AlertID, evt.Slug, evt.Threshold, evt.Price,
	)
	return err
}

func (r *PostgresRecorder) RecordSentiment(reading model.FearGreedReading) error {
	_, err := r.db.Exec(`INSERT INTO sentiment_readings
		(timestamp, value, classification, estimated)
		VALUES ($1,$2,$3,$4)`,
		reading.FetchedAt.Unix(), reading.Value, reading.Classification, reading.Estimated,
	)
	return err
}

func (r *PostgresRecorder) Close() error {
	log.Println("[INFO] closing postgres recorder")
	return r.db.Close()
}
