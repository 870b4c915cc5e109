package chunking

import (
	"fmt"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// pageSpan is a half-open rune interval [start, end) of one page inside
// the concatenated document stream. Empty pages get zero-width spans and
// therefore never intersect a window.
type pageSpan struct {
	number int
	start  int
	end    int
}

// Splitter cuts a document into fixed-size overlapping rune windows,
// tracking which pages each window touches. Chunk text is the exact
// window content, so it stays a contiguous substring of the
// concatenation of its source pages.
type Splitter struct{}

func NewSplitter() *Splitter {
	return &Splitter{}
}

func (s *Splitter) Split(doc *domain.Document, cfg domain.ChunkConfig) ([]domain.Chunk, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var stream []rune
	spans := make([]pageSpan, 0, len(doc.Pages))
	for _, p := range doc.Pages {
		runes := []rune(p.Text)
		spans = append(spans, pageSpan{
			number: p.Number,
			start:  len(stream),
			end:    len(stream) + len(runes),
		})
		stream = append(stream, runes...)
	}
	if len(stream) == 0 {
		return nil, nil
	}

	step := cfg.Size - cfg.Overlap
	chunks := make([]domain.Chunk, 0, len(stream)/step+1)
	for start := 0; start < len(stream); start += step {
		end := start + cfg.Size
		if end > len(stream) {
			end = len(stream)
		}
		chunks = append(chunks, domain.Chunk{
			ID:          fmt.Sprintf("%s:%d", doc.ID, len(chunks)),
			Index:       len(chunks),
			SourcePages: sourcePages(spans, start, end),
			Text:        string(stream[start:end]),
			Size:        end - start,
		})
		if end == len(stream) {
			break
		}
	}
	return chunks, nil
}

func sourcePages(spans []pageSpan, start, end int) []int {
	pages := make([]int, 0, 2)
	for _, sp := range spans {
		if sp.start < end && start < sp.end {
			pages = append(pages, sp.number)
		}
	}
	return pages
}
