package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Page holds the extracted text of a single source page. Numbers are
// 1-based and strictly increasing within a document.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Document is an immutable ordered collection of pages. Instances are
// only created through NewDocument.
type Document struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Pages     []Page    `json:"pages"`
	CreatedAt time.Time `json:"created_at"`
}

func NewDocument(id, filename string, pages []Page) (*Document, error) {
	if len(pages) == 0 {
		return nil, WrapError(ErrEmptyDocument, "new document", errors.New("no pages"))
	}
	blank := true
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, WrapError(ErrEmptyDocument, "new document", errors.New("all pages are blank"))
	}
	prev := 0
	for i, p := range pages {
		if p.Number <= prev {
			return nil, WrapError(
				ErrInvalidDocument,
				"new document",
				fmt.Errorf("page %d has number %d, want > %d", i, p.Number, prev),
			)
		}
		prev = p.Number
	}
	return &Document{
		ID:        id,
		Filename:  filename,
		Pages:     pages,
		CreatedAt: time.Now().UTC(),
	}, nil
}

const (
	SizeBandSmall  = "small"
	SizeBandMedium = "medium"
	SizeBandLarge  = "large"
)

type DocumentStats struct {
	Pages           int    `json:"pages"`
	Words           int    `json:"words"`
	Characters      int    `json:"characters"`
	EstimatedTokens int    `json:"estimated_tokens"`
	SizeBand        string `json:"size_band"`
}

// EstimateTokens approximates the model token count as characters/4.
func EstimateTokens(text string) int {
	return utf8.RuneCountInString(text) / 4
}

func (d *Document) Stats() DocumentStats {
	var words, chars int
	for _, p := range d.Pages {
		words += len(strings.Fields(p.Text))
		chars += utf8.RuneCountInString(p.Text)
	}
	tokens := chars / 4
	band := SizeBandLarge
	switch {
	case tokens <= 3000:
		band = SizeBandSmall
	case tokens <= 5000:
		band = SizeBandMedium
	}
	return DocumentStats{
		Pages:           len(d.Pages),
		Words:           words,
		Characters:      chars,
		EstimatedTokens: tokens,
		SizeBand:        band,
	}
}
