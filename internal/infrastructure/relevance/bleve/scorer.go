// Package bleve scores chunks with a throwaway in-memory BM25 index.
package bleve

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"

	"github.com/studypdf/studypdf/internal/core/domain"
)

type indexedChunk struct {
	Text string `json:"text"`
}

// Scorer builds a fresh MemOnly index per call and maps hit scores back
// to chunks by ID. Misses score zero. BM25 over a fixed chunk set is
// deterministic, which the selection contract requires.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

func (s *Scorer) Score(chunks []domain.Chunk, query string) ([]float64, error) {
	scores := make([]float64, len(chunks))
	if len(chunks) == 0 || strings.TrimSpace(query) == "" {
		return scores, nil
	}

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	defer index.Close()

	for _, chunk := range chunks {
		if err := index.Index(chunk.ID, indexedChunk{Text: chunk.Text}); err != nil {
			return nil, fmt.Errorf("index chunk %s: %w", chunk.ID, err)
		}
	}

	// MatchQuery analyzes the raw user text; query-string syntax would
	// choke on unbalanced quotes or parens in a real question.
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), len(chunks), 0, false)
	res, err := index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	byID := make(map[string]float64, len(res.Hits))
	for _, hit := range res.Hits {
		byID[hit.ID] = hit.Score
	}
	for i, chunk := range chunks {
		scores[i] = byID[chunk.ID]
	}
	return scores, nil
}
