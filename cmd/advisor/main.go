package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TrendAdvisor/internal/advisor"
	"TrendAdvisor/internal/analyzer"
	"TrendAdvisor/internal/collector"
	"TrendAdvisor/internal/config"
	"TrendAdvisor/internal/notifier"
	"TrendAdvisor/internal/options"
	"TrendAdvisor/internal/recorder"
	"TrendAdvisor/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendAdvisor starting...")

	// .env is optional; real env vars win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

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

	// Init market-data fetcher, wrapped in the TTL cache
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	cached := collector.NewCachedFetcher(fetcher, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
	log.Printf("[INFO] data source: %s", cached.Name())

	// Init options fetcher
	optFetcher := options.NewYahooFetcher(cfg.Proxy)

	// Init analysis service
	svc := analyzer.NewService(cached, optFetcher, advisor.Thresholds{
		Up:   *cfg.Analysis.UpThreshold,
		Down: *cfg.Analysis.DownThreshold,
	}, cfg.Analysis.HorizonDays)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, svc, tn, rec, cfg.Market.Watchlist, cfg.Market.LookbackDays)
	if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, scanning watchlist now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] TrendAdvisor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TrendAdvisor stopped")
}
