package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"wordpage/internal/config"
	"wordpage/internal/jobs"
	"wordpage/internal/lookup"
	"wordpage/internal/metrics"
	"wordpage/internal/server"
	"wordpage/internal/source"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Session storage
	var storage fiber.Storage
	if cfg.RedisURL != "" {
		storage = redis.New(redis.Config{URL: cfg.RedisURL})
		log.Println("Sessions stored in Redis")
	} else {
		log.Println("Sessions stored in memory. Set REDIS_URL to share them across instances.")
	}

	// Sources and lookup
	words := source.NewWordSource(cfg.RandomWordURL, cfg.SourceTimeout, logger)
	definitions := source.NewDefinitionSource(cfg.DictionaryURL, cfg.SourceTimeout, logger)
	svc := lookup.NewService(words, definitions, logger)
	pages := lookup.NewRegistry()

	metrics.Init(pages)

	// Background jobs
	sweeper := jobs.NewPageSweeper(pages, cfg.PageSweepInterval, cfg.PageIdleTimeout)
	go sweeper.Start(ctx)

	srv := server.New(cfg, storage)
	srv.RegisterRoutes(svc, pages)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if storage != nil {
		if err := storage.Close(); err != nil {
			log.Printf("Failed to close session storage: %v", err)
		}
	}
	log.Println("Server exited")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
