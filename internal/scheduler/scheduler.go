package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"TrendAdvisor/internal/analyzer"
	"TrendAdvisor/internal/notifier"
	"TrendAdvisor/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the recurring watchlist scan and user commands.
type Scheduler struct {
	Cron         *cron.Cron
	Analyzer     *analyzer.Service
	Notifier     *notifier.TelegramNotifier
	Recorder     recorder.Recorder
	Watchlist    []string
	LookbackDays int
	Ctx          context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *analyzer.Service, tn *notifier.TelegramNotifier, rec recorder.Recorder, watchlist []string, lookbackDays int) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Analyzer:     svc,
		Notifier:     tn,
		Recorder:     rec,
		Watchlist:    watchlist,
		LookbackDays: lookbackDays,
		Ctx:          ctx,
	}
}

// RegisterAll registers the daily watchlist scan.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.scanTask); err != nil {
		return fmt.Errorf("register daily scan: %w", err)
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

// RunScanNow executes the watchlist scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) dateRange() (time.Time, time.Time) {
	end := time.Now()
	return end.AddDate(0, 0, -s.LookbackDays), end
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running watchlist scan")
	start, end := s.dateRange()

	var reports []*analyzer.Report
	failures := map[string]string{}

	for _, symbol := range s.Watchlist {
		report, err := s.Analyzer.Analyze(symbol, start, end)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", symbol, err)
			failures[symbol] = err.Error()
			continue
		}
		reports = append(reports, report)
		if err := s.Recorder.RecordAnalysis(report); err != nil {
			log.Printf("[ERROR] record analysis %s: %v", symbol, err)
		}
	}

	if len(reports) == 0 && len(failures) == 0 {
		return
	}
	s.trySend(notifier.FormatScanSummary(reports, failures))
}

// analyzeOne runs a single-symbol analysis and returns the full report text.
func (s *Scheduler) analyzeOne(symbol string) string {
	start, end := s.dateRange()
	report, err := s.Analyzer.Analyze(symbol, start, end)
	if err != nil {
		log.Printf("[ERROR] analyze %s: %v", symbol, err)
		return fmt.Sprintf("❌ %s: %v", symbol, err)
	}
	if err := s.Recorder.RecordAnalysis(report); err != nil {
		log.Printf("[ERROR] record analysis %s: %v", symbol, err)
	}
	return notifier.FormatReport(report)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze SYMBOL"
		}
		return s.analyzeOne(strings.ToUpper(fields[1]))
	case "/scan":
		go s.scanTask()
		return "Watchlist scan started."
	case "/watchlist":
		return "Watchlist: " + strings.Join(s.Watchlist, ", ")
	case "/events":
		return "Upcoming economic events (earnings, Fed announcements) will be displayed here. This feature is under development."
	case "/news":
		if len(fields) < 2 {
			return "Usage: /news SYMBOL"
		}
		return fmt.Sprintf("News sentiment for %s is under development.", strings.ToUpper(fields[1]))
	default:
		return helpText
	}
}

const helpText = "Available commands:\n" +
	"• /analyze SYMBOL — run a trend analysis\n" +
	"• /scan — scan the whole watchlist\n" +
	"• /watchlist — show configured symbols\n" +
	"• /events — upcoming economic events\n" +
	"• /news SYMBOL — news sentiment"

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, notifier.HTML(text)); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
