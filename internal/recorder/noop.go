package recorder

import "cryptodash/internal/model"

// NoopRecorder is a no-op implementation used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordQuotes(_ []model.Quote) error              { return nil }
func (n *NoopRecorder) RecordAlertTrigger(_ *AlertTriggerEvent) error   { return nil }
func (n *NoopRecorder) RecordSentiment(_ model.FearGreedReading) error  { return nil }
func (n *NoopRecorder) Close() error                                    { return nil }
