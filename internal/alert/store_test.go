package alert

import (
	"errors"
	"path/filepath"
	"testing"

	"cryptodash/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "alerts.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestAddRejectsNonPositiveThreshold(t *testing.T) {
	s := newTestStore(t)
	for _, threshold := range []float64{0, -5} {
		if _, err := s.Add("bitcoin", threshold); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("threshold %v: expected ErrInvalidThreshold, got %v", threshold, err)
		}
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("rejected adds must not mutate: list length %d", got)
	}
}

func TestAddRejectsUnknownAsset(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add("dollarcoin", 1); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("expected ErrUnknownAsset, got %v", err)
	}
}

func TestEvaluateFiresExactlyOnce(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add("bitcoin", 45000); err != nil {
		t.Fatalf("add: %v", err)
	}

	below := model.QuoteSet{"bitcoin": {Slug: "bitcoin", USDPrice: 44999}}
	if fired := s.Evaluate(below); len(fired) != 0 {
		t.Fatalf("alert fired below threshold: %+v", fired)
	}

	at := model.QuoteSet{"bitcoin": {Slug: "bitcoin", USDPrice: 45000}}
	fired := s.Evaluate(at)
	if len(fired) != 1 {
		t.Fatalf("expected exactly one trigger, got %d", len(fired))
	}
	if fired[0].Price != 45000 {
		t.Errorf("trigger price = %v", fired[0].Price)
	}

	higher := model.QuoteSet{"bitcoin": {Slug: "bitcoin", USDPrice: 50000}}
	if fired := s.Evaluate(higher); len(fired) != 0 {
		t.Fatal("triggered alert must not re-fire")
	}

	// triggered but not auto-removed
	list := s.List()
	if len(list) != 1 || !list[0].Triggered {
		t.Errorf("expected one triggered alert retained, got %+v", list)
	}
}

func TestEvaluateSkipsAssetsWithoutQuotes(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add("solana", 10); err != nil {
		t.Fatalf("add: %v", err)
	}
	if fired := s.Evaluate(model.QuoteSet{"bitcoin": {Slug: "bitcoin", USDPrice: 50000}}); len(fired) != 0 {
		t.Fatalf("alert without a quote must not fire: %+v", fired)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Add("ethereum", 3000)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Remove(a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("expected empty list, got %d", got)
	}
	if err := s.Remove(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double remove, got %v", err)
	}
}

func TestPersistenceAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Add("bitcoin", 45000); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Evaluate(model.QuoteSet{"bitcoin": {Slug: "bitcoin", USDPrice: 46000}})

	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	list := reloaded.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 persisted alert, got %d", len(list))
	}
	if !list[0].Triggered {
		t.Error("triggered flag must survive reload")
	}
}
