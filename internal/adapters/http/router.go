// Package httpadapter exposes the assistant pipeline over HTTP.
package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/core/ports"
	"github.com/studypdf/studypdf/internal/observability/metrics"
)

// Options carries the per-request defaults and traffic policy the
// handlers fill in when a request leaves them unset.
type Options struct {
	Service         string
	Model           string
	APIKey          string
	ChunkSize       int
	ChunkOverlap    int
	MaxContextSize  int
	SummarySections int
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxConcurrent   int
}

type Router struct {
	loader    ports.DocumentIngestor
	assistant ports.AssistantService
	reader    ports.DocumentReader
	metrics   *metrics.HTTPServerMetrics
	opts      Options
}

func NewRouter(
	loader ports.DocumentIngestor,
	assistant ports.AssistantService,
	reader ports.DocumentReader,
	m *metrics.HTTPServerMetrics,
	opts Options,
) *Router {
	return &Router{
		loader:    loader,
		assistant: assistant,
		reader:    reader,
		metrics:   m,
		opts:      opts,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.Handle("/metrics", rt.metrics.Handler())
	mux.HandleFunc("/openapi.yaml", rt.openapiContract)
	mux.HandleFunc("/v1/documents", rt.documents)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	mux.HandleFunc("/v1/ask", rt.ask)
	mux.HandleFunc("/v1/quick-action", rt.quickAction)
	mux.HandleFunc("/v1/summarize", rt.summarize)

	var handler http.Handler = mux
	handler = bearerAuthMiddleware(handler, rt.opts.APIKey)
	if rt.opts.MaxConcurrent > 0 {
		handler = backpressureMiddleware(handler, rt.opts.MaxConcurrent, defaultBackpressureWait)
	}
	if rt.opts.RateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.opts.RateLimitRPS, rt.opts.RateLimitBurst)
	}
	handler = rt.metrics.Middleware(rt.opts.Service, handler)
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) documents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.uploadDocument(w, r)
	case http.MethodGet:
		rt.listDocuments(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.loader.Load(r.Context(), fileHeader.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}

	rt.metrics.RecordDocumentLoaded(rt.opts.Service, doc.Stats().SizeBand)
	writeJSON(w, http.StatusCreated, newDocumentResponse(doc))
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := rt.reader.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]documentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newDocumentResponse(doc))
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newDocumentResponse(doc))
}

func (rt *Router) ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		DocumentID     string `json:"document_id"`
		Mode           string `json:"mode"`
		Query          string `json:"query"`
		ChunkSize      int    `json:"chunk_size"`
		ChunkOverlap   int    `json:"chunk_overlap"`
		MaxContextSize int    `json:"max_context_size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.DocumentID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document_id is required"})
		return
	}

	mode := domain.ModeFreeQuestion
	if strings.TrimSpace(req.Mode) != "" {
		var err error
		mode, err = domain.ParseAnalysisMode(req.Mode)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	doc, err := rt.reader.GetByID(r.Context(), req.DocumentID)
	if err != nil {
		writeError(w, err)
		return
	}

	rt.answer(w, r, "ask", domain.AnswerRequest{
		Document:    doc,
		Mode:        mode,
		Query:       req.Query,
		ChunkConfig: rt.chunkConfig(req.ChunkSize, req.ChunkOverlap),
		Budget:      rt.budget(req.MaxContextSize),
	})
}

func (rt *Router) quickAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		DocumentID string `json:"document_id"`
		Action     string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.DocumentID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document_id is required"})
		return
	}

	action, err := domain.QuickActionByName(req.Action)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := rt.reader.GetByID(r.Context(), req.DocumentID)
	if err != nil {
		writeError(w, err)
		return
	}

	rt.answer(w, r, "quick-action", domain.AnswerRequest{
		Document:    doc,
		Mode:        action.Mode,
		ChunkConfig: rt.chunkConfig(0, 0),
		Budget:      rt.budget(0),
	})
}

// answer runs the shared pipeline invocation for /v1/ask and
// /v1/quick-action and records the per-answer observations.
func (rt *Router) answer(w http.ResponseWriter, r *http.Request, endpoint string, req domain.AnswerRequest) {
	start := time.Now()
	resp, err := rt.assistant.Answer(r.Context(), req)
	if err != nil {
		rt.metrics.RecordAnswer(rt.opts.Service, endpoint, string(req.Mode), "error", 0, time.Since(start))
		writeError(w, err)
		return
	}

	rt.metrics.RecordAnswer(rt.opts.Service, endpoint, string(req.Mode), "success", len(resp.Sources), time.Since(start))
	rt.metrics.RecordTokenUsage(rt.opts.Service, endpoint, rt.opts.Model, approximatePromptTokens(req, resp.Sources), domain.EstimateTokens(resp.Text))
	slog.Info("answer_generated",
		"endpoint", endpoint,
		"mode", string(req.Mode),
		"sources", len(resp.Sources),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (rt *Router) summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		DocumentID  string `json:"document_id"`
		MaxSections int    `json:"max_sections"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.DocumentID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document_id is required"})
		return
	}

	doc, err := rt.reader.GetByID(r.Context(), req.DocumentID)
	if err != nil {
		writeError(w, err)
		return
	}

	maxSections := req.MaxSections
	if maxSections <= 0 {
		maxSections = rt.opts.SummarySections
	}

	start := time.Now()
	result, err := rt.assistant.Summarize(r.Context(), domain.SummarizeRequest{
		Document:    doc,
		Mode:        domain.ModeSummary,
		MaxSections: maxSections,
		ChunkConfig: rt.chunkConfig(0, 0),
	})
	if err != nil {
		rt.metrics.RecordAnswer(rt.opts.Service, "summarize", string(domain.ModeSummary), "error", 0, time.Since(start))
		writeError(w, err)
		return
	}

	rt.metrics.RecordAnswer(rt.opts.Service, "summarize", string(domain.ModeSummary), "success", result.Sections, time.Since(start))
	rt.metrics.RecordSummarySections(rt.opts.Service, result.Sections)
	rt.metrics.RecordTokenUsage(rt.opts.Service, "summarize", rt.opts.Model, 0, domain.EstimateTokens(result.Text))
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) chunkConfig(size, overlap int) domain.ChunkConfig {
	cfg := domain.ChunkConfig{Size: rt.opts.ChunkSize, Overlap: rt.opts.ChunkOverlap}
	if size > 0 {
		cfg.Size = size
	}
	if overlap > 0 {
		cfg.Overlap = overlap
	}
	return cfg
}

func (rt *Router) budget(maxContextSize int) domain.SelectionBudget {
	if maxContextSize <= 0 {
		maxContextSize = rt.opts.MaxContextSize
	}
	return domain.SelectionBudget{MaxContextSize: maxContextSize}
}

func approximatePromptTokens(req domain.AnswerRequest, sources []domain.Chunk) int {
	total := domain.EstimateTokens(req.Query)
	for _, chunk := range sources {
		total += domain.EstimateTokens(chunk.Text)
	}
	return total
}

type documentResponse struct {
	ID        string               `json:"id"`
	Filename  string               `json:"filename"`
	CreatedAt time.Time            `json:"created_at"`
	Stats     domain.DocumentStats `json:"stats"`
}

func newDocumentResponse(doc *domain.Document) documentResponse {
	return documentResponse{
		ID:        doc.ID,
		Filename:  doc.Filename,
		CreatedAt: doc.CreatedAt,
		Stats:     doc.Stats(),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
