// Package plaintext extracts pages from utf-8 text files. Form feeds
// mark page breaks; files without them yield a single page.
package plaintext

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/studypdf/studypdf/internal/core/domain"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(ctx context.Context, r io.Reader, filename string) ([]domain.Page, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, errors.New("not valid utf-8 text")
	}

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	segments := strings.Split(text, "\f")
	// a trailing form feed closes the last page instead of opening an
	// empty one
	if n := len(segments); n > 1 && strings.TrimSpace(segments[n-1]) == "" {
		segments = segments[:n-1]
	}

	pages := make([]domain.Page, 0, len(segments))
	for i, segment := range segments {
		pages = append(pages, domain.Page{
			Number: i + 1,
			Text:   strings.TrimSpace(segment),
		})
	}
	return pages, nil
}
