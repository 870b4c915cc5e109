// Package extractor routes uploaded files to a per-format text
// extractor by filename extension.
package extractor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/core/ports"
)

type Registry struct {
	byExt map[string]ports.TextExtractor
}

func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]ports.TextExtractor)}
}

// Register binds an extension (with or without the leading dot) to an
// extractor. Later registrations replace earlier ones.
func (r *Registry) Register(ext string, e ports.TextExtractor) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || e == nil {
		return
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.byExt[ext] = e
}

func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (r *Registry) Extract(ctx context.Context, reader io.Reader, filename string) ([]domain.Page, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, domain.WrapError(
			domain.ErrExtraction,
			"extract document",
			fmt.Errorf("unsupported file type %q", ext),
		)
	}
	pages, err := e.Extract(ctx, reader, filename)
	if err != nil {
		if domain.IsKind(err, domain.ErrExtraction) {
			return nil, err
		}
		return nil, domain.WrapError(domain.ErrExtraction, "extract document", err)
	}
	return pages, nil
}
