package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/core/prompt"
)

// defaultMaxSections bounds how many chunks a summary covers when the
// request leaves the limit unset.
const defaultMaxSections = 5

// Summarize runs progressive summarization: summarize the leading chunks
// one by one, then combine the per-section summaries with a final
// mode-templated completion. Unlike Answer, it makes sections+1 provider
// calls.
func (uc *AnswerUseCase) Summarize(ctx context.Context, req domain.SummarizeRequest) (*domain.SummaryResult, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ModeSummary
	}
	if err := uc.validateSummarize(req.Document, mode); err != nil {
		return nil, err
	}

	maxSections := req.MaxSections
	if maxSections <= 0 {
		maxSections = defaultMaxSections
	}

	chunks, err := uc.split(req.Document, req.ChunkConfig)
	if err != nil {
		return nil, fmt.Errorf("split document: %w", err)
	}

	sections := chunks
	truncated := false
	if len(sections) > maxSections {
		sections = sections[:maxSections]
		truncated = true
	}

	summaries := make([]string, 0, len(sections))
	for i, chunk := range sections {
		text, err := uc.complete(ctx, prompt.SectionSummary(chunk), fmt.Sprintf("summarize section %d", i+1))
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, fmt.Sprintf("Section %d:\n%s", i+1, text))
	}

	combined, err := prompt.Combine(mode, strings.Join(summaries, "\n\n"))
	if err != nil {
		return nil, fmt.Errorf("build summary prompt: %w", err)
	}

	text, err := uc.complete(ctx, combined, "combine summaries")
	if err != nil {
		return nil, err
	}

	return &domain.SummaryResult{
		Text:      text,
		Sections:  len(sections),
		Truncated: truncated,
	}, nil
}

func (uc *AnswerUseCase) validateSummarize(doc *domain.Document, mode domain.AnalysisMode) error {
	if doc == nil {
		return domain.WrapError(domain.ErrInvalidDocument, "validate request", errors.New("document is nil"))
	}
	if !mode.Valid() {
		return domain.WrapError(domain.ErrUnsupportedMode, "validate request", fmt.Errorf("mode %q", mode))
	}
	return nil
}
