package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/core/ports"
)

// LoadDocumentUseCase turns an uploaded file into a validated, registered
// document.
type LoadDocumentUseCase struct {
	extractor ports.TextExtractor
	store     ports.DocumentStore
}

func NewLoadDocumentUseCase(extractor ports.TextExtractor, store ports.DocumentStore) *LoadDocumentUseCase {
	return &LoadDocumentUseCase{
		extractor: extractor,
		store:     store,
	}
}

func (uc *LoadDocumentUseCase) Load(ctx context.Context, filename string, body io.Reader) (*domain.Document, error) {
	pages, err := uc.extractor.Extract(ctx, body, filename)
	if err != nil {
		if domain.IsKind(err, domain.ErrExtraction) {
			return nil, err
		}
		return nil, domain.WrapError(domain.ErrExtraction, "extract document", err)
	}

	doc, err := domain.NewDocument(uuid.NewString(), filename, pages)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	if err := uc.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	return doc, nil
}
