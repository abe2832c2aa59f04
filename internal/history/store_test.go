package history

import (
	"testing"
	"time"
)

func TestSeriesEmptyBeforeData(t *testing.T) {
	s := NewStore()
	if got := s.Series("bitcoin"); len(got) != 0 {
		t.Fatalf("expected empty series, got %d samples", len(got))
	}
}

func TestRecordEvictsOldest(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < Capacity+1; i++ {
		s.Record("bitcoin", float64(i), base.Add(time.Duration(i)*time.Minute))
	}

	got := s.Series("bitcoin")
	if len(got) != Capacity {
		t.Fatalf("expected %d samples after %d appends, got %d", Capacity, Capacity+1, len(got))
	}
	if got[0].Price != 1 {
		t.Errorf("first recorded sample should be evicted: head price = %v", got[0].Price)
	}
	if got[len(got)-1].Price != float64(Capacity) {
		t.Errorf("newest sample missing: tail price = %v", got[len(got)-1].Price)
	}
}

func TestRecordDropsOutOfOrder(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.Record("ethereum", 100, base)
	if ok := s.Record("ethereum", 99, base.Add(-time.Minute)); ok {
		t.Fatal("expected out-of-order sample to be dropped")
	}
	if got := s.Series("ethereum"); len(got) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(got))
	}
	// equal timestamps are allowed
	if ok := s.Record("ethereum", 101, base); !ok {
		t.Fatal("expected same-timestamp sample to be accepted")
	}
}

func TestSeriesIsolatedPerAsset(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.Record("bitcoin", 43000, now)
	if got := s.Series("solana"); len(got) != 0 {
		t.Errorf("expected no solana samples, got %d", len(got))
	}
	if got := s.Prices("bitcoin"); len(got) != 1 || got[0] != 43000 {
		t.Errorf("unexpected prices: %v", got)
	}
}
