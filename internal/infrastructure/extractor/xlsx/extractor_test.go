package xlsx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	cells := map[string]string{
		"A1": "term",
		"B1": "definition",
		"A2": "mitosis",
		"B2": "cell division",
	}
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("SetCellValue() error = %v", err)
		}
	}
	if _, err := f.NewSheet("Glossary"); err != nil {
		t.Fatalf("NewSheet() error = %v", err)
	}
	if err := f.SetCellValue("Glossary", "A1", "ATP"); err != nil {
		t.Fatalf("SetCellValue() error = %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	return buf.Bytes()
}

func TestExtractSheetsAsPages(t *testing.T) {
	raw := buildWorkbook(t)

	pages, err := NewExtractor().Extract(context.Background(), bytes.NewReader(raw), "deck.xlsx")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].Number != 1 || pages[1].Number != 2 {
		t.Fatalf("page numbers = %d, %d", pages[0].Number, pages[1].Number)
	}
	if !strings.HasPrefix(pages[0].Text, "Sheet: Sheet1") {
		t.Fatalf("page 1 text = %q", pages[0].Text)
	}
	if !strings.Contains(pages[0].Text, "term\tdefinition") {
		t.Fatalf("page 1 missing tab-joined header row: %q", pages[0].Text)
	}
	if !strings.Contains(pages[0].Text, "mitosis\tcell division") {
		t.Fatalf("page 1 missing data row: %q", pages[0].Text)
	}
	if !strings.HasPrefix(pages[1].Text, "Sheet: Glossary") || !strings.Contains(pages[1].Text, "ATP") {
		t.Fatalf("page 2 text = %q", pages[1].Text)
	}
}

func TestExtractRejectsNonWorkbook(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), strings.NewReader("not a workbook"), "deck.xlsx")
	if err == nil {
		t.Fatal("expected error for invalid workbook data")
	}
}
