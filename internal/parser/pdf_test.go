package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	pdflib "github.com/ledongthuc/pdf"
)

func buildPDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	for _, lines := range pages {
		pdf.AddPage()
		for _, l := range lines {
			pdf.CellFormat(0, 10, l, "", 1, "L", false, 0, "")
		}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return buf.Bytes()
}

type glyph struct {
	s    string
	x, w float64
}

func rowOf(gs ...glyph) *pdflib.Row {
	row := &pdflib.Row{}
	for _, g := range gs {
		row.Content = append(row.Content, pdflib.Text{S: g.s, X: g.x, W: g.w, FontSize: 12})
	}
	return row
}

func TestPDFParser_Pages(t *testing.T) {
	data := buildPDF(t,
		[]string{"1. Greetings", "Hello there friend"},
		[]string{"2. Numbers", "One two three"},
	)
	p := &PDFParser{}
	ex, err := p.Parse(bytes.NewReader(data), "notes.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", ex.Title)
	}
	if ex.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", ex.PageCount())
	}
	if !strings.Contains(ex.Pages[0], "Greetings") || !strings.Contains(ex.Pages[1], "Numbers") {
		t.Errorf("unexpected page text: %q", ex.Pages)
	}
	if strings.Contains(ex.Pages[0], "Numbers") {
		t.Errorf("page 2 text leaked into page 1: %q", ex.Pages[0])
	}
}

func TestPDFParser_Garbage(t *testing.T) {
	p := &PDFParser{}
	if _, err := p.Parse(strings.NewReader("not a pdf at all"), "bad.pdf"); err == nil {
		t.Fatal("expected error for non-pdf input")
	}
}

func TestSplitPages(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"one", 1},
		{"one\f", 1},
		{"one\ftwo\f", 2},
		{"one\f\fthree", 3},
	}
	for _, tt := range tests {
		if got := splitPages(tt.in); len(got) != tt.want {
			t.Errorf("splitPages(%q) = %d pages, want %d", tt.in, len(got), tt.want)
		}
	}
}

func TestRowText_WordGaps(t *testing.T) {
	row := rowOf(
		glyph{"Bon", 10, 15},
		glyph{"jour", 25, 20},
		glyph{"ami", 60, 15},
	)
	if got := rowText(row); got != "Bonjour ami" {
		t.Errorf("rowText = %q, want %q", got, "Bonjour ami")
	}
}
