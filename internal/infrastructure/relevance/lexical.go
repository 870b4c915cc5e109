package relevance

import (
	"regexp"
	"strings"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// tokenPattern matches unicode letter/digit runs, joined across
// apostrophes so contractions stay one token.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`)

const minTokenRunes = 3

// LexicalScorer ranks chunks by how densely they mention the query's
// significant terms: occurrences of each distinct query term inside the
// chunk, normalized by the chunk's token count. Pure function of its
// inputs, so scoring is deterministic.
type LexicalScorer struct {
	stopwords map[string]struct{}
}

func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{stopwords: defaultStopwords()}
}

func (s *LexicalScorer) Score(chunks []domain.Chunk, query string) ([]float64, error) {
	terms := s.significantTerms(query)
	scores := make([]float64, len(chunks))
	if len(terms) == 0 {
		return scores, nil
	}
	for i, chunk := range chunks {
		tokens := tokenize(chunk.Text)
		if len(tokens) == 0 {
			continue
		}
		occurrences := 0
		for _, token := range tokens {
			if _, ok := terms[token]; ok {
				occurrences++
			}
		}
		scores[i] = float64(occurrences) / float64(len(tokens))
	}
	return scores, nil
}

// significantTerms reduces a query to the distinct tokens worth
// matching: stopwords and very short tokens carry no signal.
func (s *LexicalScorer) significantTerms(query string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, token := range tokenize(query) {
		if len([]rune(token)) < minTokenRunes {
			continue
		}
		if _, ok := s.stopwords[token]; ok {
			continue
		}
		terms[token] = struct{}{}
	}
	return terms
}

func tokenize(s string) []string {
	return tokenPattern.FindAllString(strings.ToLower(s), -1)
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "again",
		"further", "than", "so", "such", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "own", "same", "too", "very", "can", "will", "just",
		"what", "which", "who", "whom", "how", "when", "where", "why",
		"does", "did", "has", "have", "had", "not", "you",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
