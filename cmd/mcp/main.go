package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	mcpadapter "github.com/studypdf/studypdf/internal/adapters/mcp"
	"github.com/studypdf/studypdf/internal/bootstrap"
	"github.com/studypdf/studypdf/internal/config"
	"github.com/studypdf/studypdf/internal/observability/logging"
)

const (
	serviceName    = "studypdf-mcp"
	serviceVersion = "1.0.0"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	// Stdout carries the protocol stream, so logs go to stderr.
	slog.SetDefault(logging.NewJSONLoggerTo(os.Stderr, serviceName, cfg.LogLevel))

	app, err := bootstrap.New(context.Background(), serviceName, cfg)
	if err != nil {
		slog.Error("bootstrap", "error", err)
		os.Exit(1)
	}

	srv := mcpadapter.NewServer(app.Loader, app.Assistant, app.Reader, mcpadapter.Options{
		Service:         serviceName,
		Version:         serviceVersion,
		ChunkSize:       cfg.ChunkSize,
		ChunkOverlap:    cfg.ChunkOverlap,
		MaxContextSize:  cfg.MaxContextSize,
		SummarySections: cfg.SummaryMaxSections,
	})

	slog.Info("mcp server ready", "model", cfg.GroqModel)
	if err := srv.Serve(); err != nil {
		slog.Error("mcp server", "error", err)
		os.Exit(1)
	}
}
