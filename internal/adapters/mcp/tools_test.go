package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/core/ports"
)

type loaderFake struct {
	filename string
	err      error
}

func (f *loaderFake) Load(_ context.Context, filename string, body io.Reader) (*domain.Document, error) {
	f.filename = filename
	if f.err != nil {
		return nil, f.err
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	return domain.NewDocument("doc-1", filename, []domain.Page{{Number: 1, Text: string(raw)}})
}

type assistantFake struct {
	summary *domain.SummaryResult
	err     error
	lastReq domain.AnswerRequest
	lastSum domain.SummarizeRequest
}

func (f *assistantFake) Answer(_ context.Context, req domain.AnswerRequest) (*domain.AssistantResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AssistantResponse{Text: "an answer", Mode: req.Mode}, nil
}

func (f *assistantFake) Summarize(_ context.Context, req domain.SummarizeRequest) (*domain.SummaryResult, error) {
	f.lastSum = req
	if f.err != nil {
		return nil, f.err
	}
	if f.summary != nil {
		return f.summary, nil
	}
	return &domain.SummaryResult{Text: "a summary", Sections: 2}, nil
}

type readerFake struct {
	docs map[string]*domain.Document
}

func (f *readerFake) GetByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", fmt.Errorf("no document with id %q", id))
	}
	return doc, nil
}

func (f *readerFake) List(_ context.Context) ([]*domain.Document, error) {
	out := make([]*domain.Document, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, doc)
	}
	return out, nil
}

func storedDoc(t *testing.T) *domain.Document {
	t.Helper()
	doc, err := domain.NewDocument("doc-1", "biology.pdf", []domain.Page{
		{Number: 1, Text: "Photosynthesis converts light into chemical energy."},
	})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	return doc
}

func newTestServer(loader ports.DocumentIngestor, assistant ports.AssistantService, reader ports.DocumentReader) *Server {
	return NewServer(loader, assistant, reader, Options{
		Service:         "studypdf-mcp",
		Version:         "test",
		ChunkSize:       1200,
		ChunkOverlap:    200,
		MaxContextSize:  14000,
		SummarySections: 5,
	})
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("expected tool result content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T", res.Content[0])
	}
	return text.Text
}

func TestLoadDocumentRegistersFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("lecture notes"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loader := &loaderFake{}
	srv := newTestServer(loader, &assistantFake{}, &readerFake{})

	res, err := srv.loadDocument(context.Background(), callReq(map[string]any{"path": path}))
	if err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if loader.filename != "notes.txt" {
		t.Fatalf("filename = %q, want base name", loader.filename)
	}

	var info documentInfo
	if err := json.Unmarshal([]byte(resultText(t, res)), &info); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if info.ID != "doc-1" || info.Filename != "notes.txt" || info.Pages != 1 {
		t.Fatalf("info = %+v", info)
	}
}

func TestLoadDocumentRequiresPath(t *testing.T) {
	srv := newTestServer(&loaderFake{}, &assistantFake{}, &readerFake{})

	res, err := srv.loadDocument(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing path")
	}
}

func TestLoadDocumentReportsMissingFile(t *testing.T) {
	srv := newTestServer(&loaderFake{}, &assistantFake{}, &readerFake{})

	res, err := srv.loadDocument(context.Background(), callReq(map[string]any{
		"path": filepath.Join(t.TempDir(), "absent.pdf"),
	}))
	if err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing file")
	}
	if !strings.Contains(resultText(t, res), "open document") {
		t.Fatalf("result = %q", resultText(t, res))
	}
}

func TestLoadDocumentSurfacesExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loader := &loaderFake{err: domain.WrapError(domain.ErrExtraction, "extract document", errors.New("corrupt stream"))}
	srv := newTestServer(loader, &assistantFake{}, &readerFake{})

	res, err := srv.loadDocument(context.Background(), callReq(map[string]any{"path": path}))
	if err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for failed extraction")
	}
	if !strings.Contains(resultText(t, res), "extraction failed") {
		t.Fatalf("result = %q", resultText(t, res))
	}
}

func TestListDocumentsReturnsCatalog(t *testing.T) {
	reader := &readerFake{docs: map[string]*domain.Document{"doc-1": storedDoc(t)}}
	srv := newTestServer(&loaderFake{}, &assistantFake{}, reader)

	res, err := srv.listDocuments(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("listDocuments() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	var infos []documentInfo
	if err := json.Unmarshal([]byte(resultText(t, res)), &infos); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(infos) != 1 || infos[0].ID != "doc-1" || infos[0].Filename != "biology.pdf" {
		t.Fatalf("infos = %+v", infos)
	}
}

func TestAskDocumentAnswersWithDefaults(t *testing.T) {
	assistant := &assistantFake{}
	reader := &readerFake{docs: map[string]*domain.Document{"doc-1": storedDoc(t)}}
	srv := newTestServer(&loaderFake{}, assistant, reader)

	res, err := srv.askDocument(context.Background(), callReq(map[string]any{
		"document_id": "doc-1",
		"question":    "what is photosynthesis",
	}))
	if err != nil {
		t.Fatalf("askDocument() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "an answer" {
		t.Fatalf("result = %q", got)
	}
	if assistant.lastReq.Mode != domain.ModeFreeQuestion {
		t.Fatalf("mode = %q, want free_question", assistant.lastReq.Mode)
	}
	if assistant.lastReq.ChunkConfig.Size != 1200 || assistant.lastReq.ChunkConfig.Overlap != 200 {
		t.Fatalf("chunk config = %+v", assistant.lastReq.ChunkConfig)
	}
	if assistant.lastReq.Budget.MaxContextSize != 14000 {
		t.Fatalf("budget = %+v", assistant.lastReq.Budget)
	}
}

func TestAskDocumentParsesMode(t *testing.T) {
	assistant := &assistantFake{}
	reader := &readerFake{docs: map[string]*domain.Document{"doc-1": storedDoc(t)}}
	srv := newTestServer(&loaderFake{}, assistant, reader)

	res, err := srv.askDocument(context.Background(), callReq(map[string]any{
		"document_id": "doc-1",
		"question":    "what did the authors measure",
		"mode":        "research_paper",
	}))
	if err != nil {
		t.Fatalf("askDocument() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if assistant.lastReq.Mode != domain.ModeResearchPaper {
		t.Fatalf("mode = %q, want research_paper", assistant.lastReq.Mode)
	}
}

func TestAskDocumentRejectsUnknownMode(t *testing.T) {
	reader := &readerFake{docs: map[string]*domain.Document{"doc-1": storedDoc(t)}}
	srv := newTestServer(&loaderFake{}, &assistantFake{}, reader)

	res, err := srv.askDocument(context.Background(), callReq(map[string]any{
		"document_id": "doc-1",
		"question":    "q",
		"mode":        "essay",
	}))
	if err != nil {
		t.Fatalf("askDocument() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for unsupported mode")
	}
}

func TestAskDocumentReportsUnknownDocument(t *testing.T) {
	srv := newTestServer(&loaderFake{}, &assistantFake{}, &readerFake{})

	res, err := srv.askDocument(context.Background(), callReq(map[string]any{
		"document_id": "missing",
		"question":    "q",
	}))
	if err != nil {
		t.Fatalf("askDocument() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for unknown document")
	}
	if !strings.Contains(resultText(t, res), "document not found") {
		t.Fatalf("result = %q", resultText(t, res))
	}
}

func TestSummarizeDocumentDefaultsSections(t *testing.T) {
	assistant := &assistantFake{}
	reader := &readerFake{docs: map[string]*domain.Document{"doc-1": storedDoc(t)}}
	srv := newTestServer(&loaderFake{}, assistant, reader)

	res, err := srv.summarizeDocument(context.Background(), callReq(map[string]any{
		"document_id": "doc-1",
	}))
	if err != nil {
		t.Fatalf("summarizeDocument() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if assistant.lastSum.MaxSections != 5 {
		t.Fatalf("max sections = %d, want configured default", assistant.lastSum.MaxSections)
	}
	if assistant.lastSum.Mode != domain.ModeSummary {
		t.Fatalf("mode = %q", assistant.lastSum.Mode)
	}
}

func TestSummarizeDocumentNotesTruncation(t *testing.T) {
	assistant := &assistantFake{summary: &domain.SummaryResult{Text: "combined", Sections: 5, Truncated: true}}
	reader := &readerFake{docs: map[string]*domain.Document{"doc-1": storedDoc(t)}}
	srv := newTestServer(&loaderFake{}, assistant, reader)

	res, err := srv.summarizeDocument(context.Background(), callReq(map[string]any{
		"document_id":  "doc-1",
		"max_sections": 5,
	}))
	if err != nil {
		t.Fatalf("summarizeDocument() error = %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "combined") || !strings.Contains(text, "first 5 sections") {
		t.Fatalf("result = %q", text)
	}
	if assistant.lastSum.MaxSections != 5 {
		t.Fatalf("max sections = %d", assistant.lastSum.MaxSections)
	}
}
