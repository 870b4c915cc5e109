// Package bootstrap assembles the assistant's object graph from
// configuration. Both binaries share it so the pipeline behaves the
// same over HTTP and MCP.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	httpadapter "github.com/studypdf/studypdf/internal/adapters/http"
	"github.com/studypdf/studypdf/internal/config"
	"github.com/studypdf/studypdf/internal/core/ports"
	"github.com/studypdf/studypdf/internal/core/usecase"
	"github.com/studypdf/studypdf/internal/infrastructure/chunking"
	"github.com/studypdf/studypdf/internal/infrastructure/extractor"
	"github.com/studypdf/studypdf/internal/infrastructure/llm/groq"
	"github.com/studypdf/studypdf/internal/infrastructure/relevance"
	blevescorer "github.com/studypdf/studypdf/internal/infrastructure/relevance/bleve"
	"github.com/studypdf/studypdf/internal/infrastructure/repository/memory"
	"github.com/studypdf/studypdf/internal/infrastructure/resilience"
	"github.com/studypdf/studypdf/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Loader    ports.DocumentIngestor
	Assistant ports.AssistantService
	Reader    ports.DocumentReader
	Metrics   *metrics.HTTPServerMetrics

	service string
}

func New(ctx context.Context, serviceName string, cfg config.Config) (*App, error) {
	if _, err := httpadapter.Contract(ctx); err != nil {
		return nil, fmt.Errorf("validate api contract: %w", err)
	}

	scorer, err := newScorer(cfg.SelectorBackend)
	if err != nil {
		return nil, err
	}

	store := memory.NewDocumentStore()
	registry := extractor.NewDefaultRegistry()
	splitter := chunking.NewSplitter()
	cache := chunking.NewCache()
	selector := relevance.NewSelector(scorer)

	provider := groq.New(cfg.GroqAPIKey, groq.Options{
		BaseURL:            cfg.GroqBaseURL,
		Model:              cfg.GroqModel,
		RequestTimeout:     time.Duration(cfg.GroqTimeoutSeconds) * time.Second,
		RequestsPerSecond:  cfg.GroqRequestsPerSecond,
		Burst:              cfg.GroqBurst,
		ResilienceExecutor: resilience.NewExecutor(resilience.DefaultConfig()),
	})

	answerUC := usecase.NewAnswerUseCase(
		splitter,
		cache,
		selector,
		provider,
		time.Duration(cfg.AnswerTimeoutSeconds)*time.Second,
	)
	loadUC := usecase.NewLoadDocumentUseCase(registry, store)

	return &App{
		Config: cfg,

		Loader:    loadUC,
		Assistant: answerUC,
		Reader:    store,
		Metrics:   metrics.NewHTTPServerMetrics(serviceName),

		service: serviceName,
	}, nil
}

// RouterOptions maps the loaded configuration onto the HTTP adapter.
func (a *App) RouterOptions() httpadapter.Options {
	return httpadapter.Options{
		Service:         a.service,
		Model:           a.Config.GroqModel,
		APIKey:          a.Config.APIKey,
		ChunkSize:       a.Config.ChunkSize,
		ChunkOverlap:    a.Config.ChunkOverlap,
		MaxContextSize:  a.Config.MaxContextSize,
		SummarySections: a.Config.SummaryMaxSections,
		RateLimitRPS:    a.Config.RateLimitRPS,
		RateLimitBurst:  a.Config.RateLimitBurst,
		MaxConcurrent:   a.Config.MaxConcurrent,
	}
}

func newScorer(backend string) (relevance.Scorer, error) {
	switch backend {
	case "", "lexical":
		return relevance.NewLexicalScorer(), nil
	case "bleve":
		return blevescorer.NewScorer(), nil
	default:
		return nil, fmt.Errorf("unknown selector backend %q", backend)
	}
}
