// Package relevance picks the chunks most worth sending to the model
// under a fixed context budget.
package relevance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// Scorer assigns one relevance score per chunk for a query. Higher means
// more relevant. Implementations must be deterministic for identical
// input.
type Scorer interface {
	Score(chunks []domain.Chunk, query string) ([]float64, error)
}

// Selector ranks chunks and greedily fills the budget. The returned
// slice is always a subsequence of the input: ranking decides membership,
// document order decides presentation.
type Selector struct {
	scorer Scorer
}

func NewSelector(scorer Scorer) *Selector {
	if scorer == nil {
		scorer = NewLexicalScorer()
	}
	return &Selector{scorer: scorer}
}

func (s *Selector) Select(chunks []domain.Chunk, query string, budget domain.SelectionBudget) ([]domain.Chunk, error) {
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	smallest := chunks[0].Size
	for _, c := range chunks[1:] {
		if c.Size < smallest {
			smallest = c.Size
		}
	}
	if budget.MaxContextSize < smallest {
		return nil, domain.WrapError(
			domain.ErrBudgetTooSmall,
			"select context",
			fmt.Errorf("budget %d below smallest chunk size %d", budget.MaxContextSize, smallest),
		)
	}

	ranked := make([]int, len(chunks))
	for i := range ranked {
		ranked[i] = i
	}
	if strings.TrimSpace(query) != "" {
		scores, err := s.scorer.Score(chunks, query)
		if err != nil {
			return nil, fmt.Errorf("score chunks: %w", err)
		}
		sort.SliceStable(ranked, func(a, b int) bool {
			i, j := ranked[a], ranked[b]
			if scores[i] != scores[j] {
				return scores[i] > scores[j]
			}
			return chunks[i].Index < chunks[j].Index
		})
	}

	// Greedy fill over the full ranked list: a candidate that overflows
	// is skipped, not a stopping point, since a smaller chunk further
	// down may still fit.
	total := 0
	taken := make([]int, 0, len(ranked))
	for _, i := range ranked {
		if total+chunks[i].Size > budget.MaxContextSize {
			continue
		}
		taken = append(taken, i)
		total += chunks[i].Size
	}

	sort.Ints(taken)
	selected := make([]domain.Chunk, 0, len(taken))
	for _, i := range taken {
		selected = append(selected, chunks[i])
	}
	return selected, nil
}
