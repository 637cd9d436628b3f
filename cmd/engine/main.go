package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"trackr-engine/internal/config"
	"trackr-engine/internal/events"
	"trackr-engine/internal/httpapi"
	"trackr-engine/internal/scheduler"
	"trackr-engine/internal/scrape"
	"trackr-engine/internal/scrape/render"
	"trackr-engine/internal/store"
)

func main() {
	// .env is optional; env vars override nothing in config, they only cover
	// bootstrap knobs (data dir, renderer token).
	if err := godotenv.Load(); err == nil {
		log.Printf("[engine] loaded .env")
	}

	dataDir := os.Getenv("TRACKR_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "trackr.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()
	guard := scrape.NewGuard(dataDir)

	var scrapeStatus atomic.Value
	scrapeStatus.Store(scrape.Status{})

	// One guarded end-to-end run. The renderer is rebuilt per run so config
	// edits (endpoint, mode) take effect without a restart.
	runScrape := func(ctx context.Context, cfg config.Config) (int, error) {
		return guard.Do(func() (int, error) {
			r, err := render.NewFromConfig(cfg)
			if err != nil {
				return 0, err
			}
			return scrape.RunScrape(ctx, db, cfg, r)
		})
	}

	// Background scrape on the configured cron spec.
	if cfg.Scrape.Schedule != "" {
		stop, err := scheduler.Start(context.Background(), cfg.Scrape.Schedule, "scrape", func(ctx context.Context) error {
			cur := cfgVal.Load().(config.Config)
			hub.Publish(events.ScrapeStarted("", "cron"))
			count, err := runScrape(ctx, cur)

			now := time.Now().Format(time.RFC3339)
			next := scrapeStatus.Load().(scrape.Status)
			next.Running = false
			next.LastRunAt = now
			next.LastCount = count
			switch {
			case err == nil:
				next.LastError = ""
				next.LastOkAt = now
				hub.Publish(events.ScrapeFinished("", count, ""))
				hub.Publish(events.DatasetReplaced("", count))
			case errors.Is(err, scrape.ErrScrapeInProgress):
				next.LastError = ""
				hub.Publish(events.ScrapeFinished("", 0, err.Error()))
			default:
				next.LastError = err.Error()
				hub.Publish(events.ScrapeFinished("", 0, err.Error()))
			}
			scrapeStatus.Store(next)
			return err
		})
		if err != nil {
			log.Fatalf("scheduler start failed: %v", err)
		}
		defer stop()
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:           db,
		Hub:          hub,
		CfgVal:       &cfgVal,
		ScrapeStatus: &scrapeStatus,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
		RunScrape:    runScrape,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Printf("engine stopped")
}
