package recorder

import "cryptodash/internal/model"

// AlertTriggerEvent records one alert firing.
type AlertTriggerEvent struct {
	AlertID   string
	Slug      string
	Threshold float64
	Price     float64
}

// Recorder persists observed market data for offline analysis. Recording is
// best-effort observability; the dashboard never reads it back.
type Recorder interface {
	RecordQuotes(quotes []model.Quote) error
	RecordAlertTrigger(evt *AlertTriggerEvent) error
	RecordSentiment(reading model.FearGreedReading) error
	Close() error
}
