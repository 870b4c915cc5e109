// Package html extracts readable text from HTML documents as a single
// page, skipping script and style content.
package html

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/studypdf/studypdf/internal/core/domain"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(ctx context.Context, r io.Reader, filename string) ([]domain.Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	collectText(root, &b)

	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, nil
	}
	return []domain.Page{{Number: 1, Text: text}}, nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	case html.TextNode:
		if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(trimmed)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
