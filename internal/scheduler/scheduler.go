package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"cryptodash/internal/alert"
	"cryptodash/internal/collector"
	"cryptodash/internal/history"
	"cryptodash/internal/model"
	"cryptodash/internal/notifier"
	"cryptodash/internal/panels"
	"cryptodash/internal/recorder"
	"cryptodash/internal/snapshot"
	"cryptodash/internal/view"
)

// refreshTimeout bounds one quote cycle, fallback fetch included.
const refreshTimeout = 45 * time.Second

// Scheduler drives the two refresh cycles: a fast quote cycle and a slow
// panel cycle. Quote cycles are serialized; if a fetch is still in flight
// when the next tick arrives, the tick is skipped rather than overlapped.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	History   *history.Store
	Snapshot  snapshot.Store
	Alerts    *alert.Store
	Renderer  *view.Renderer
	Sentiment *panels.SentimentGauge
	Ticker    *panels.Ticker
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context

	refreshing atomic.Bool
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, hist *history.Store,
	snap snapshot.Store, alerts *alert.Store, rend *view.Renderer,
	gauge *panels.SentimentGauge, tick *panels.Ticker,
	ntf notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		History:   hist,
		Snapshot:  snap,
		Alerts:    alerts,
		Renderer:  rend,
		Sentiment: gauge,
		Ticker:    tick,
		Notifier:  ntf,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the quote and panel cycles.
func (s *Scheduler) RegisterAll(quoteCron, panelCron string) error {
	if _, err := s.Cron.AddFunc(quoteCron, s.QuoteTask); err != nil {
		return fmt.Errorf("register quote task: %w", err)
	}
	if _, err := s.Cron.AddFunc(panelCron, s.PanelTask); err != nil {
		return fmt.Errorf("register panel task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes both cycles immediately (RUN_ON_START / manual trigger).
func (s *Scheduler) RunNow() {
	s.QuoteTask()
	s.PanelTask()
}

// QuoteTask runs one fetch → snapshot → history → alerts → render cycle.
// Any failure leaves previously rendered data untouched; the next tick
// retries independently.
func (s *Scheduler) QuoteTask() {
	if !s.refreshing.CompareAndSwap(false, true) {
		log.Println("[WARN] previous quote refresh still in flight, skipping tick")
		return
	}
	defer s.refreshing.Store(false)

	ctx, cancel := context.WithTimeout(s.Ctx, refreshTimeout)
	defer cancel()

	quotes, err := s.Collector.Collect(ctx)
	if err != nil {
		log.Printf("[ERROR] quote collect: %v", err)
		s.Renderer.RenderError(err)
		return
	}

	if err := s.Snapshot.Update(ctx, quotes); err != nil {
		log.Printf("[ERROR] update snapshot: %v", err)
	}
	for _, q := range quotes {
		s.History.Record(q.Slug, q.USDPrice, q.ObservedAt)
	}

	set := make(model.QuoteSet, len(quotes))
	for _, q := range quotes {
		set[q.Slug] = q
	}
	for _, trig := range s.Alerts.Evaluate(set) {
		s.notifyTrigger(ctx, trig)
	}

	if err := s.Recorder.RecordQuotes(quotes); err != nil {
		log.Printf("[ERROR] record quotes: %v", err)
	}

	s.Ticker.Refresh(set)
	s.Renderer.Render(quotes)
}

// PanelTask refreshes the slow-moving panel content.
func (s *Scheduler) PanelTask() {
	ctx, cancel := context.WithTimeout(s.Ctx, refreshTimeout)
	defer cancel()

	reading := s.Sentiment.Refresh(ctx)
	if err := s.Recorder.RecordSentiment(reading); err != nil {
		log.Printf("[ERROR] record sentiment: %v", err)
	}

	quotes, err := s.Snapshot.Current(ctx)
	if err != nil {
		log.Printf("[ERROR] read snapshot: %v", err)
		return
	}
	s.Ticker.Refresh(quotes)
}

func (s *Scheduler) notifyTrigger(ctx context.Context, trig alert.Trigger) {
	title, body := notifier.FormatAlertMessage(trig.Alert.Slug, trig.Price)
	if err := s.Notifier.Notify(ctx, title, body); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
	if err := s.Recorder.RecordAlertTrigger(&recorder.AlertTriggerEvent{
		AlertID:   trig.Alert.ID,
		Slug:      trig.Alert.Slug,
		Threshold: trig.Alert.Threshold,
		Price:     trig.Price,
	}); err != nil {
		log.Printf("[ERROR] record alert trigger: %v", err)
	}
}
