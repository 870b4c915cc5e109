package ports

import (
	"context"
	"io"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// TextExtractor produces ordered per-page text from an uploaded file.
type TextExtractor interface {
	Extract(ctx context.Context, r io.Reader, filename string) ([]domain.Page, error)
}

// Chunker splits a document into provenance-aware chunks.
type Chunker interface {
	Split(doc *domain.Document, cfg domain.ChunkConfig) ([]domain.Chunk, error)
}

// ChunkCache serves previously split chunk sequences keyed by document
// identity and chunk configuration.
type ChunkCache interface {
	Get(documentID string, cfg domain.ChunkConfig) ([]domain.Chunk, bool)
	Put(documentID string, cfg domain.ChunkConfig, chunks []domain.Chunk)
}

// ContextSelector picks the chunks most relevant to a query under a
// total-size budget, preserving document order in its result.
type ContextSelector interface {
	Select(chunks []domain.Chunk, query string, budget domain.SelectionBudget) ([]domain.Chunk, error)
}

// CompletionProvider generates model output from a rendered prompt.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt domain.Prompt) (string, error)
	Model() string
}

// DocumentStore keeps loaded documents addressable for the process
// lifetime.
type DocumentStore interface {
	Save(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
}
