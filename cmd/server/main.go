package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"seotitles/internal/config"
	"seotitles/internal/generator"
	"seotitles/internal/serp"
	"seotitles/internal/server"
	"seotitles/internal/suggest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		log.Printf("Warning: %v. Title generation will fail until they are set.", err)
	}

	searcher := serp.NewClient(serp.Config{
		BaseURL:  cfg.DataForSEOBaseURL,
		Username: cfg.DataForSEOUsername,
		Password: cfg.DataForSEOPassword,
		Timeout:  cfg.UpstreamTimeout,
	})
	suggester := suggest.NewClient(suggest.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.UpstreamTimeout,
	})
	log.Printf("Using model %s", suggester.Model())

	srv := server.New(cfg)
	srv.RegisterRoutes(generator.New(searcher, suggester))

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
