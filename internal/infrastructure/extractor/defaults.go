package extractor

import (
	"github.com/studypdf/studypdf/internal/infrastructure/extractor/html"
	"github.com/studypdf/studypdf/internal/infrastructure/extractor/pdf"
	"github.com/studypdf/studypdf/internal/infrastructure/extractor/plaintext"
	"github.com/studypdf/studypdf/internal/infrastructure/extractor/xlsx"
)

// NewDefaultRegistry wires every built-in format extractor.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	text := plaintext.NewExtractor()
	r.Register(".txt", text)
	r.Register(".md", text)
	r.Register(".pdf", pdf.NewExtractor())
	web := html.NewExtractor()
	r.Register(".html", web)
	r.Register(".htm", web)
	r.Register(".xlsx", xlsx.NewExtractor())
	return r
}
