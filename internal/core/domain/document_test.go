package domain

import (
	"strings"
	"testing"
)

func TestNewDocumentRejectsNoPages(t *testing.T) {
	_, err := NewDocument("doc-1", "empty.pdf", nil)
	if err == nil {
		t.Fatal("expected error for document without pages")
	}
	if !IsKind(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestNewDocumentRejectsAllBlankPages(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "   "},
		{Number: 2, Text: "\n\t"},
		{Number: 3, Text: ""},
	}
	_, err := NewDocument("doc-1", "blank.pdf", pages)
	if err == nil {
		t.Fatal("expected error for all-blank pages")
	}
	if !IsKind(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestNewDocumentAcceptsOneNonBlankPage(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: ""},
		{Number: 2, Text: "content"},
	}
	doc, err := NewDocument("doc-1", "sparse.pdf", pages)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected pages preserved, got %d", len(doc.Pages))
	}
	if doc.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestNewDocumentRejectsBadNumbering(t *testing.T) {
	cases := []struct {
		name  string
		pages []Page
	}{
		{"zero-based", []Page{{Number: 0, Text: "a"}, {Number: 1, Text: "b"}}},
		{"duplicate", []Page{{Number: 1, Text: "a"}, {Number: 1, Text: "b"}}},
		{"decreasing", []Page{{Number: 2, Text: "a"}, {Number: 1, Text: "b"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDocument("doc-1", "bad.pdf", tc.pages)
			if err == nil {
				t.Fatal("expected numbering error")
			}
			if !IsKind(err, ErrInvalidDocument) {
				t.Fatalf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestNewDocumentAllowsPageGaps(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "a"},
		{Number: 3, Text: "b"},
		{Number: 7, Text: "c"},
	}
	if _, err := NewDocument("doc-1", "gaps.pdf", pages); err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
}

func TestDocumentStats(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "alpha beta gamma"},
		{Number: 2, Text: "delta epsilon"},
	}
	doc, err := NewDocument("doc-1", "stats.pdf", pages)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	stats := doc.Stats()
	if stats.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", stats.Pages)
	}
	if stats.Words != 5 {
		t.Fatalf("expected 5 words, got %d", stats.Words)
	}
	if stats.Characters != 29 {
		t.Fatalf("expected 29 characters, got %d", stats.Characters)
	}
	if stats.EstimatedTokens != 7 {
		t.Fatalf("expected 7 estimated tokens, got %d", stats.EstimatedTokens)
	}
	if stats.SizeBand != SizeBandSmall {
		t.Fatalf("expected small band, got %s", stats.SizeBand)
	}
}

func TestDocumentStatsBands(t *testing.T) {
	mk := func(chars int) *Document {
		doc, err := NewDocument("doc-1", "band.pdf", []Page{{Number: 1, Text: strings.Repeat("x", chars)}})
		if err != nil {
			t.Fatalf("NewDocument() error = %v", err)
		}
		return doc
	}
	if band := mk(12000).Stats().SizeBand; band != SizeBandSmall {
		t.Fatalf("expected small at 3000 tokens, got %s", band)
	}
	if band := mk(20000).Stats().SizeBand; band != SizeBandMedium {
		t.Fatalf("expected medium at 5000 tokens, got %s", band)
	}
	if band := mk(20004).Stats().SizeBand; band != SizeBandLarge {
		t.Fatalf("expected large above 5000 tokens, got %s", band)
	}
}

func TestEstimateTokensCountsRunes(t *testing.T) {
	if got := EstimateTokens("abcdefgh"); got != 2 {
		t.Fatalf("EstimateTokens() = %d, want 2", got)
	}
	if got := EstimateTokens("éééééééé"); got != 2 {
		t.Fatalf("EstimateTokens() = %d for multibyte text, want 2", got)
	}
}
