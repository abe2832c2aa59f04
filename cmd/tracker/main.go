package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptodash/internal/alert"
	"cryptodash/internal/collector"
	"cryptodash/internal/config"
	"cryptodash/internal/history"
	"cryptodash/internal/model"
	"cryptodash/internal/notifier"
	"cryptodash/internal/panels"
	"cryptodash/internal/recorder"
	"cryptodash/internal/scheduler"
	"cryptodash/internal/server"
	"cryptodash/internal/snapshot"
	"cryptodash/internal/view"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] cryptodash starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	slugs := model.Slugs()

	// Init fetchers: CoinMarketCap primary, CoinGecko fallback
	primary := collector.NewCMCFetcher(cfg.Sources.CMCBaseURL, cfg.Sources.CMCAPIKey, cfg.Proxy)
	secondary := collector.NewGeckoFetcher(cfg.Sources.GeckoBaseURL, cfg.Proxy)
	col := collector.NewCollector(primary, secondary, slugs)
	log.Printf("[INFO] data sources: %s, fallback %s", primary.Name(), secondary.Name())

	// Init snapshot store
	var snap snapshot.Store
	if cfg.Redis.Addr != "" {
		rs, err := snapshot.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, slugs)
		if err != nil {
			log.Printf("[WARN] init redis store failed, using memory: %v", err)
			snap = snapshot.NewMemoryStore()
		} else {
			snap = rs
			log.Printf("[INFO] snapshot store: redis %s", cfg.Redis.Addr)
		}
	} else {
		snap = snapshot.NewMemoryStore()
	}
	defer snap.Close()

	// Init alert store
	alerts, err := alert.NewStore(cfg.Alerts.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init alert store: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	switch {
	case cfg.Database.PostgresDSN != "":
		pr, err := recorder.NewPostgresRecorder(cfg.Database.PostgresDSN)
		if err != nil {
			log.Printf("[WARN] init postgres recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = pr
		}
	case cfg.Database.SQLitePath != "":
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	default:
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	// Init notifier
	var ntf notifier.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		ntf = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] notifier: telegram")
	} else {
		ntf = notifier.NewLogNotifier()
	}

	// Init view layer and panels
	hist := history.NewStore()
	rend := view.NewRenderer(hist)
	gauge := panels.NewSentimentGauge(collector.NewFearGreedClient(cfg.Sources.FngBaseURL))
	tick := panels.NewTicker()

	hub := server.NewHub()
	rend.AddHook(func(d view.Dashboard) {
		hub.Broadcast(d)
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, hist, snap, alerts, rend, gauge, tick, ntf, rec)
	if err := sched.RegisterAll(cfg.Schedule.QuoteCron, cfg.Schedule.PanelCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init HTTP server
	api := &server.API{
		Renderer:  rend,
		History:   hist,
		Snapshot:  snap,
		Alerts:    alerts,
		Sentiment: gauge,
		Ticker:    tick,
		Hub:       hub,
	}
	srv := server.NewServer(cfg.Server.Port, api)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing refresh now")
		go sched.RunNow()
	}

	log.Println("[INFO] cryptodash is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] %v", err)
	}
	log.Println("[INFO] cryptodash stopped")
}
