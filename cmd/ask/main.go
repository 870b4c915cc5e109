package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/studypdf/studypdf/internal/bootstrap"
	"github.com/studypdf/studypdf/internal/config"
	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/observability/logging"
)

const serviceName = "studypdf-ask"

func main() {
	_ = godotenv.Load()

	var (
		file         string
		mode         string
		query        string
		summarize    bool
		sections     int
		chunkSize    int
		chunkOverlap int
		maxContext   int
	)
	flag.StringVar(&file, "file", "", "Document to load (pdf, txt, xlsx or html)")
	flag.StringVar(&mode, "mode", "", "Analysis mode (free_question, summary, homework, research_paper, lecture_notes, flashcards, quiz)")
	flag.StringVar(&query, "query", "", "Question to ask about the document")
	flag.BoolVar(&summarize, "summarize", false, "Build a section-by-section summary instead of answering a question")
	flag.IntVar(&sections, "sections", 0, "Section limit for -summarize (0 uses the configured default)")
	flag.IntVar(&chunkSize, "chunk-size", 0, "Chunk size override in characters")
	flag.IntVar(&chunkOverlap, "chunk-overlap", 0, "Chunk overlap override in characters")
	flag.IntVar(&maxContext, "max-context", 0, "Context budget override in characters")
	flag.Parse()

	if file == "" {
		fmt.Fprintln(os.Stderr, "Usage: ask -file document.pdf [-query \"...\"] [-mode homework] [-summarize]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	// Stdout carries the answer, so logs go to stderr.
	slog.SetDefault(logging.NewJSONLoggerTo(os.Stderr, serviceName, cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, serviceName, cfg)
	if err != nil {
		slog.Error("bootstrap", "error", err)
		os.Exit(1)
	}

	reader, err := os.Open(file)
	if err != nil {
		slog.Error("open document", "error", err)
		os.Exit(1)
	}
	doc, err := app.Loader.Load(ctx, filepath.Base(file), reader)
	reader.Close()
	if err != nil {
		slog.Error("load document", "error", err)
		os.Exit(1)
	}
	stats := doc.Stats()
	slog.Info("document loaded", "filename", doc.Filename, "pages", stats.Pages, "size_band", stats.SizeBand)

	chunkCfg := domain.ChunkConfig{Size: cfg.ChunkSize, Overlap: cfg.ChunkOverlap}
	if chunkSize > 0 {
		chunkCfg.Size = chunkSize
	}
	if chunkOverlap > 0 {
		chunkCfg.Overlap = chunkOverlap
	}
	budget := domain.SelectionBudget{MaxContextSize: cfg.MaxContextSize}
	if maxContext > 0 {
		budget.MaxContextSize = maxContext
	}

	if summarize {
		maxSections := cfg.SummaryMaxSections
		if sections > 0 {
			maxSections = sections
		}
		result, err := app.Assistant.Summarize(ctx, domain.SummarizeRequest{
			Document:    doc,
			Mode:        domain.ModeSummary,
			MaxSections: maxSections,
			ChunkConfig: chunkCfg,
		})
		if err != nil {
			slog.Error("summarize", "error", err)
			os.Exit(1)
		}
		fmt.Println(result.Text)
		if result.Truncated {
			slog.Warn("summary truncated", "sections", result.Sections)
		}
		return
	}

	analysisMode := domain.ModeFreeQuestion
	if mode != "" {
		analysisMode, err = domain.ParseAnalysisMode(mode)
		if err != nil {
			slog.Error("parse mode", "error", err)
			os.Exit(1)
		}
	}

	resp, err := app.Assistant.Answer(ctx, domain.AnswerRequest{
		Document:    doc,
		Mode:        analysisMode,
		Query:       query,
		ChunkConfig: chunkCfg,
		Budget:      budget,
	})
	if err != nil {
		slog.Error("answer", "error", err)
		os.Exit(1)
	}
	fmt.Println(resp.Text)
}
