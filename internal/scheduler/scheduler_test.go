package scheduler

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cryptodash/internal/alert"
	"cryptodash/internal/collector"
	"cryptodash/internal/history"
	"cryptodash/internal/model"
	"cryptodash/internal/panels"
	"cryptodash/internal/recorder"
	"cryptodash/internal/snapshot"
	"cryptodash/internal/view"
)

type captureNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (c *captureNotifier) Notify(_ context.Context, title, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, title+": "+body)
	return nil
}

type blockingFetcher struct {
	release chan struct{}
}

func (b *blockingFetcher) Name() string { return "blocking" }

func (b *blockingFetcher) FetchQuotes(_ context.Context, slugs []string) ([]model.Quote, error) {
	<-b.release
	mock := &collector.MockFetcher{}
	return mock.FetchQuotes(context.Background(), slugs)
}

func newTestScheduler(t *testing.T, primary collector.Fetcher) (*Scheduler, *captureNotifier) {
	t.Helper()
	alerts, err := alert.NewStore(filepath.Join(t.TempDir(), "alerts.json"))
	if err != nil {
		t.Fatalf("alert store: %v", err)
	}
	hist := history.NewStore()
	ntf := &captureNotifier{}
	s := NewScheduler(
		context.Background(),
		collector.NewCollector(primary, nil, model.Slugs()),
		hist,
		snapshot.NewMemoryStore(),
		alerts,
		view.NewRenderer(hist),
		panels.NewSentimentGauge(collector.NewFearGreedClient("http://127.0.0.1:1")),
		panels.NewTicker(),
		ntf,
		recorder.NewNoopRecorder(),
	)
	return s, ntf
}

func TestQuoteTaskRendersDashboard(t *testing.T) {
	s, _ := newTestScheduler(t, &collector.MockFetcher{})

	s.QuoteTask()

	dash := s.Renderer.Dashboard()
	if len(dash.Cards) != len(model.Assets) {
		t.Fatalf("cards = %d, want %d", len(dash.Cards), len(model.Assets))
	}
	if dash.Error != "" {
		t.Fatalf("unexpected dashboard error: %q", dash.Error)
	}
	if got := s.History.Series("bitcoin"); len(got) != 1 {
		t.Fatalf("history samples = %d, want 1", len(got))
	}
	quotes, err := s.Snapshot.Current(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if _, ok := quotes["bitcoin"]; !ok {
		t.Fatal("snapshot missing bitcoin quote")
	}
}

func TestQuoteTaskFiresAlertOnce(t *testing.T) {
	mock := &collector.MockFetcher{}
	s, ntf := newTestScheduler(t, mock)

	// Mock prices sit well above 1, so a threshold of 1 fires immediately.
	if _, err := s.Alerts.Add("bitcoin", 1); err != nil {
		t.Fatalf("add alert: %v", err)
	}

	s.QuoteTask()
	s.QuoteTask()

	ntf.mu.Lock()
	defer ntf.mu.Unlock()
	if len(ntf.messages) != 1 {
		t.Fatalf("notifications = %d, want 1: %v", len(ntf.messages), ntf.messages)
	}
}

func TestQuoteTaskFetchErrorKeepsStaleCards(t *testing.T) {
	mock := &collector.MockFetcher{}
	s, _ := newTestScheduler(t, mock)

	s.QuoteTask()
	mock.Err = errors.New("upstream down")
	s.QuoteTask()

	dash := s.Renderer.Dashboard()
	if dash.Error == "" {
		t.Fatal("expected dashboard error after failed refresh")
	}
	if len(dash.Cards) != len(model.Assets) {
		t.Fatalf("stale cards lost: got %d", len(dash.Cards))
	}
}

func TestQuoteTaskSkipsOverlappingTick(t *testing.T) {
	fetcher := &blockingFetcher{release: make(chan struct{})}
	s, _ := newTestScheduler(t, fetcher)

	done := make(chan struct{})
	go func() {
		s.QuoteTask()
		close(done)
	}()

	// Wait for the first run to grab the in-flight guard.
	for !s.refreshing.Load() {
		time.Sleep(time.Millisecond)
	}

	s.QuoteTask() // should return immediately without fetching

	close(fetcher.release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("first quote task never finished")
	}

	if got := s.History.Series("bitcoin"); len(got) != 1 {
		t.Fatalf("history samples = %d, want 1 (overlapping tick must be skipped)", len(got))
	}
}

func TestPanelTaskRefreshesTicker(t *testing.T) {
	s, _ := newTestScheduler(t, &collector.MockFetcher{})

	s.QuoteTask()
	s.PanelTask()

	items := s.Ticker.Items()
	if len(items) < 2 {
		t.Fatalf("ticker items = %d, want price entries plus headlines", len(items))
	}
	reading := s.Sentiment.Reading()
	if reading.Value < 0 || reading.Value > 100 {
		t.Fatalf("sentiment value out of range: %d", reading.Value)
	}
	if !reading.Estimated {
		t.Fatal("unreachable sentiment endpoint should yield an estimated reading")
	}
}
