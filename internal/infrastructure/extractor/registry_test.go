package extractor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/studypdf/studypdf/internal/core/domain"
)

type fakeExtractor struct {
	pages []domain.Page
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, r io.Reader, filename string) ([]domain.Page, error) {
	f.calls++
	return f.pages, f.err
}

func TestRegistryDispatchesByExtension(t *testing.T) {
	txt := &fakeExtractor{pages: []domain.Page{{Number: 1, Text: "text"}}}
	other := &fakeExtractor{pages: []domain.Page{{Number: 1, Text: "other"}}}

	r := NewRegistry()
	r.Register(".txt", txt)
	r.Register("pdf", other)

	pages, err := r.Extract(context.Background(), strings.NewReader("x"), "Notes.TXT")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if pages[0].Text != "text" || txt.calls != 1 || other.calls != 0 {
		t.Fatalf("expected .txt extractor to handle the file, got %v", pages)
	}

	if _, err := r.Extract(context.Background(), strings.NewReader("x"), "paper.pdf"); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if other.calls != 1 {
		t.Fatal("expected dot-less registration to match")
	}
}

func TestRegistryRejectsUnsupportedType(t *testing.T) {
	r := NewRegistry()
	r.Register(".txt", &fakeExtractor{})

	_, err := r.Extract(context.Background(), strings.NewReader("x"), "archive.zip")
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestRegistryWrapsExtractorFailures(t *testing.T) {
	r := NewRegistry()
	r.Register(".pdf", &fakeExtractor{err: errors.New("corrupt stream")})

	_, err := r.Extract(context.Background(), strings.NewReader("x"), "broken.pdf")
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
	if !strings.Contains(err.Error(), "corrupt stream") {
		t.Fatalf("expected cause preserved, got %v", err)
	}
}

func TestDefaultRegistryCoversKnownFormats(t *testing.T) {
	r := NewDefaultRegistry()
	want := []string{".htm", ".html", ".md", ".pdf", ".txt", ".xlsx"}
	got := r.SupportedExtensions()
	if len(got) != len(want) {
		t.Fatalf("SupportedExtensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SupportedExtensions() = %v, want %v", got, want)
		}
	}
}
