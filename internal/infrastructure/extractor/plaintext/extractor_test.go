package plaintext

import (
	"context"
	"strings"
	"testing"
)

func TestExtractSinglePage(t *testing.T) {
	pages, err := NewExtractor().Extract(context.Background(), strings.NewReader("hello world\n"), "a.txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Number != 1 || pages[0].Text != "hello world" {
		t.Fatalf("page = %+v", pages[0])
	}
}

func TestExtractSplitsOnFormFeed(t *testing.T) {
	input := "first page\fsecond page\fthird page"
	pages, err := NewExtractor().Extract(context.Background(), strings.NewReader(input), "a.txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, want := range []string{"first page", "second page", "third page"} {
		if pages[i].Number != i+1 || pages[i].Text != want {
			t.Fatalf("page %d = %+v", i, pages[i])
		}
	}
}

func TestExtractDropsTrailingFormFeedPage(t *testing.T) {
	pages, err := NewExtractor().Extract(context.Background(), strings.NewReader("only page\f"), "a.txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
}

func TestExtractNormalizesCRLF(t *testing.T) {
	pages, err := NewExtractor().Extract(context.Background(), strings.NewReader("line one\r\nline two"), "a.txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if pages[0].Text != "line one\nline two" {
		t.Fatalf("page text = %q", pages[0].Text)
	}
}

func TestExtractRejectsBinaryInput(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), strings.NewReader("\xff\xfe\x00"), "a.txt")
	if err == nil {
		t.Fatal("expected error for invalid utf-8")
	}
}

func TestExtractBlankInputYieldsNoPages(t *testing.T) {
	pages, err := NewExtractor().Extract(context.Background(), strings.NewReader("   \n\t"), "a.txt")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(pages))
	}
}
