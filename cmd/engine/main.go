package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/httpapi"
	"jobsearch-engine/internal/rank"
	"jobsearch-engine/internal/scrape"
	"jobsearch-engine/internal/scrape/demo"
	"jobsearch-engine/internal/scrape/justjoinit"
	"jobsearch-engine/internal/scrape/nofluffjobs"
	"jobsearch-engine/internal/store"
)

func main() {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	dataDir := os.Getenv("ENGINE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; sqlite really wants a single writer process.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !locked {
		log.Fatalf("another engine already runs on %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	cfg, err := loadConfig(dataDir)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if p := os.Getenv("PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			cfg.App.Port = n
		}
	}

	dbPath := filepath.Join(dataDir, "job_search.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:        db.Pool,
		Cfg:       cfg,
		Searchers: buildSearchers(cfg),
		Scorer:    rank.NewSkillScorer(cfg),
		DemoJobs:  demo.Jobs,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("api listening on %s (db=%s)", addr, dbPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutCtx)
}

func loadConfig(dataDir string) (config.Config, error) {
	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if userCfgPath != "" {
		cfg, err = config.Load(userCfgPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("load %s: %w", userCfgPath, err)
		}
	}

	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("config warning: %s", w)
	}
	if !v.OK() {
		return config.Config{}, fmt.Errorf("invalid config: %v", v.Errors)
	}
	return cfg, nil
}

func buildSearchers(cfg config.Config) []scrape.Searcher {
	timeout := time.Duration(cfg.Search.TimeoutSeconds) * time.Second

	var out []scrape.Searcher
	if cfg.Sources.NoFluffJobs.Enabled {
		out = append(out, nofluffjobs.New(cfg.Sources.NoFluffJobs.BaseURL, timeout))
	}
	if cfg.Sources.JustJoinIT.Enabled {
		out = append(out, justjoinit.New(cfg.Sources.JustJoinIT.BaseURL, timeout))
	}
	return out
}
