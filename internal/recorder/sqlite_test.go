package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"cryptodash/internal/model"
)

func TestSQLiteRecorderRoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "cryptodash.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	now := time.Now()
	err = r.RecordQuotes([]model.Quote{
		{Slug: "bitcoin", USDPrice: 43000, PctChange24h: 2.1, Volume24h: 28e9, MarketCap: 845e9, ObservedAt: now},
		{Slug: "ethereum", USDPrice: 2280, ObservedAt: now},
	})
	if err != nil {
		t.Fatalf("record quotes: %v", err)
	}

	if err := r.RecordAlertTrigger(&AlertTriggerEvent{
		AlertID: "a1", Slug: "bitcoin", Threshold: 42000, Price: 43000,
	}); err != nil {
		t.Fatalf("record trigger: %v", err)
	}

	if err := r.RecordSentiment(model.FearGreedReading{
		Value: 72, Classification: "Greed", FetchedAt: now,
	}); err != nil {
		t.Fatalf("record sentiment: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM quotes").Scan(&count); err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 quote rows, got %d", count)
	}
}
