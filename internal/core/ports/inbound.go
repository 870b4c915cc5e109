package ports

import (
	"context"
	"io"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// AssistantService is the inbound contract for question answering and
// whole-document summarization.
type AssistantService interface {
	Answer(ctx context.Context, req domain.AnswerRequest) (*domain.AssistantResponse, error)
	Summarize(ctx context.Context, req domain.SummarizeRequest) (*domain.SummaryResult, error)
}

// DocumentIngestor is the inbound contract for loading a document from
// an uploaded file.
type DocumentIngestor interface {
	Load(ctx context.Context, filename string, body io.Reader) (*domain.Document, error)
}

// DocumentReader is the inbound read model for loaded documents.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
}
