package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/studypdf/studypdf/internal/core/domain"
)

type documentInfo struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	Pages     int    `json:"pages"`
	Words     int    `json:"words"`
	SizeBand  string `json:"size_band"`
	CreatedAt string `json:"created_at"`
}

func describeDocument(doc *domain.Document) documentInfo {
	stats := doc.Stats()
	return documentInfo{
		ID:        doc.ID,
		Filename:  doc.Filename,
		Pages:     stats.Pages,
		Words:     stats.Words,
		SizeBand:  stats.SizeBand,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func loadDocumentTool() mcp.Tool {
	return mcp.NewTool("load_document",
		mcp.WithDescription("Load a study document (PDF, TXT, XLSX or HTML) from a local path and register it with the assistant."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Filesystem path of the document to load."),
		),
	)
}

func (s *Server) loadDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("open document: %v", err)), nil
	}
	defer file.Close()

	doc, err := s.loader.Load(ctx, filepath.Base(path), file)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(describeDocument(doc))
}

func listDocumentsTool() mcp.Tool {
	return mcp.NewTool("list_documents",
		mcp.WithDescription("List every document currently loaded into the assistant."),
	)
}

func (s *Server) listDocuments(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.reader.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	infos := make([]documentInfo, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, describeDocument(doc))
	}
	return jsonResult(infos)
}

func askDocumentTool() mcp.Tool {
	return mcp.NewTool("ask_document",
		mcp.WithDescription("Ask a question about a loaded document. The answer is grounded in the most relevant passages of that document."),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Identifier returned by load_document or list_documents."),
		),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("The question to answer."),
		),
		mcp.WithString("mode",
			mcp.Description("Analysis mode: free_question, summary, homework, research_paper, lecture_notes, flashcards or quiz. Defaults to free_question."),
		),
	)
}

func (s *Server) askDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	question, err := req.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mode := domain.ModeFreeQuestion
	if raw := strings.TrimSpace(req.GetString("mode", "")); raw != "" {
		mode, err = domain.ParseAnalysisMode(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	doc, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.assistant.Answer(ctx, domain.AnswerRequest{
		Document:    doc,
		Mode:        mode,
		Query:       question,
		ChunkConfig: domain.ChunkConfig{Size: s.opts.ChunkSize, Overlap: s.opts.ChunkOverlap},
		Budget:      domain.SelectionBudget{MaxContextSize: s.opts.MaxContextSize},
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resp.Text), nil
}

func summarizeDocumentTool() mcp.Tool {
	return mcp.NewTool("summarize_document",
		mcp.WithDescription("Produce a structured summary of a loaded document, built section by section."),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Identifier returned by load_document or list_documents."),
		),
		mcp.WithNumber("max_sections",
			mcp.Description("Upper bound on summarized sections. Defaults to the configured limit."),
		),
	)
}

func (s *Server) summarizeDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxSections := req.GetInt("max_sections", s.opts.SummarySections)

	doc, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.assistant.Summarize(ctx, domain.SummarizeRequest{
		Document:    doc,
		Mode:        domain.ModeSummary,
		MaxSections: maxSections,
		ChunkConfig: domain.ChunkConfig{Size: s.opts.ChunkSize, Overlap: s.opts.ChunkOverlap},
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := result.Text
	if result.Truncated {
		text = fmt.Sprintf("%s\n\n(Summary covers the first %d sections of a longer document.)", result.Text, result.Sections)
	}
	return mcp.NewToolResultText(text), nil
}
