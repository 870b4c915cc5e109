package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/core/ports"
	"github.com/studypdf/studypdf/internal/core/prompt"
)

// AnswerUseCase runs the question-answering pipeline: split the document,
// select context under the budget, build the prompt, call the provider.
// Answer makes exactly one provider call per invocation; retries of that
// call are owned by the provider's resilience layer.
type AnswerUseCase struct {
	chunker  ports.Chunker
	cache    ports.ChunkCache
	selector ports.ContextSelector
	provider ports.CompletionProvider
	timeout  time.Duration
}

func NewAnswerUseCase(
	chunker ports.Chunker,
	cache ports.ChunkCache,
	selector ports.ContextSelector,
	provider ports.CompletionProvider,
	timeout time.Duration,
) *AnswerUseCase {
	return &AnswerUseCase{
		chunker:  chunker,
		cache:    cache,
		selector: selector,
		provider: provider,
		timeout:  timeout,
	}
}

func (uc *AnswerUseCase) Answer(ctx context.Context, req domain.AnswerRequest) (*domain.AssistantResponse, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	if err := uc.validate(req); err != nil {
		return nil, err
	}

	chunks, err := uc.split(req.Document, req.ChunkConfig)
	if err != nil {
		return nil, fmt.Errorf("split document: %w", err)
	}

	selected, err := uc.selector.Select(chunks, req.Query, req.Budget)
	if err != nil {
		return nil, fmt.Errorf("select context: %w", err)
	}

	p, err := prompt.Build(req.Mode, selected, req.Query)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}
	p.Excerpt = len(selected) < len(chunks)

	text, err := uc.complete(ctx, p, "generate answer")
	if err != nil {
		return nil, err
	}

	return &domain.AssistantResponse{
		Text:    text,
		Mode:    req.Mode,
		Sources: selected,
	}, nil
}

func (uc *AnswerUseCase) validate(req domain.AnswerRequest) error {
	if req.Document == nil {
		return domain.WrapError(domain.ErrInvalidDocument, "validate request", errors.New("document is nil"))
	}
	if !req.Mode.Valid() {
		return domain.WrapError(domain.ErrUnsupportedMode, "validate request", fmt.Errorf("mode %q", req.Mode))
	}
	return nil
}

// split reads through the chunk cache: a hit returns the cached sequence,
// a miss splits and stores the result before returning it.
func (uc *AnswerUseCase) split(doc *domain.Document, cfg domain.ChunkConfig) ([]domain.Chunk, error) {
	if cached, ok := uc.cache.Get(doc.ID, cfg); ok {
		return cached, nil
	}

	chunks, err := uc.chunker.Split(doc, cfg)
	if err != nil {
		return nil, err
	}
	uc.cache.Put(doc.ID, cfg, chunks)
	return chunks, nil
}

func (uc *AnswerUseCase) complete(ctx context.Context, p domain.Prompt, operation string) (string, error) {
	text, err := uc.provider.Complete(ctx, p)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", domain.WrapError(domain.ErrTimeout, operation, err)
		}
		return "", domain.WrapError(domain.ErrGeneration, operation, err)
	}
	return text, nil
}
