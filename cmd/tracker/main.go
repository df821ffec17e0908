package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/mhsendur/StockPriceTracker/internal/config"
	"github.com/mhsendur/StockPriceTracker/internal/engine"
	"github.com/mhsendur/StockPriceTracker/internal/gateway"
	"github.com/mhsendur/StockPriceTracker/internal/recorder"
	"github.com/mhsendur/StockPriceTracker/internal/tui"
	"github.com/mhsendur/StockPriceTracker/internal/watchlist"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockPriceTracker starting...")

	_ = godotenv.Load()

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

	// Init gateway
	var gw gateway.Gateway
	if cfg.DataSource.BaseURL != "" {
		gw = gateway.NewRESTGateway(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		gw = gateway.NewYahooGateway(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", gw.Name())

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

	// Retention prune job
	maint := cron.New(cron.WithSeconds())
	if cfg.Database.SQLitePath != "" {
		retention := cfg.Database.RetentionDays
		if _, err := maint.AddFunc(cfg.Database.PruneCron, func() {
			cutoff := time.Now().AddDate(0, 0, -retention)
			n, err := rec.PruneBefore(cutoff)
			if err != nil {
				log.Printf("[ERROR] prune records: %v", err)
				return
			}
			log.Printf("[INFO] pruned %d records older than %d days", n, retention)
		}); err != nil {
			log.Fatalf("[FATAL] register prune task: %v", err)
		}
		maint.Start()
		defer maint.Stop()
	}

	store := watchlist.NewStore()
	opts := engine.Options{
		Interval:    cfg.RefreshInterval(),
		WindowSize:  cfg.Chart.WindowSize,
		Period:      cfg.Chart.Period,
		Granularity: cfg.Chart.Granularity,
	}

	if cfg.UI.Mode == "log" {
		runHeadless(ctx, cancel, gw, store, rec, opts, cfg.Symbols)
		return
	}
	runTUI(ctx, cancel, gw, store, rec, opts, cfg)
}

// runHeadless drives the engine with the log presenter until a shutdown
// signal arrives.
func runHeadless(ctx context.Context, cancel context.CancelFunc, gw gateway.Gateway,
	store *watchlist.Store, rec recorder.Recorder, opts engine.Options, symbols []string) {

	eng := engine.New(gw, store, tui.NewLogPresenter(), rec, opts)
	eng.Seed(symbols)
	go eng.Run(ctx)

	log.Println("[INFO] StockPriceTracker is running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	<-eng.Done()
	log.Println("[INFO] StockPriceTracker stopped")
}

// runTUI drives the engine behind the bubbletea dashboard. The process log
// moves to a file so it doesn't fight the terminal renderer.
func runTUI(ctx context.Context, cancel context.CancelFunc, gw gateway.Gateway,
	store *watchlist.Store, rec recorder.Recorder, opts engine.Options, cfg *config.Config) {

	if cfg.UI.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.UI.LogFile), 0755); err == nil {
			if f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				log.SetOutput(f)
				defer f.Close()
			}
		}
	}

	pres := tui.NewPresenter()
	eng := engine.New(gw, store, pres, rec, opts)
	m := tui.NewModel(eng, cancel)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	pres.Attach(prog)

	// Seed and run on the engine goroutine; its presenter sends block until
	// the program below starts consuming.
	go func() {
		eng.Seed(cfg.Symbols)
		eng.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	go func() {
		<-sigCh
		prog.Quit()
	}()

	if _, err := prog.Run(); err != nil {
		log.Printf("[ERROR] terminal ui: %v", err)
	}
	cancel()
	<-eng.Done()
	log.Println("[INFO] StockPriceTracker stopped")
}
