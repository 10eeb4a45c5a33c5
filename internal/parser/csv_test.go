package parser

import (
	"slices"
	"strings"
	"testing"
)

func TestCSVParser_RowsBecomeLines(t *testing.T) {
	input := "mot,traduction\nchat,cat\nchien , dog\n\n"
	p := &CSVParser{}
	ex, err := p.Parse(strings.NewReader(input), "vocab.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Title != "vocab" {
		t.Errorf("expected title %q, got %q", "vocab", ex.Title)
	}
	want := []string{"mot: chat, traduction: cat", "mot: chien, traduction: dog"}
	if got := strings.Split(ex.Text(), "\n"); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestCSVParser_SingleCellRowsAreBare(t *testing.T) {
	input := "entry,note\n1. Animaux\nle chat,animal domestique\n"
	p := &CSVParser{}
	ex, err := p.Parse(strings.NewReader(input), "mixed.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1. Animaux", "entry: le chat, note: animal domestique"}
	if got := strings.Split(ex.Text(), "\n"); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	ex, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.PageCount() != 1 || ex.Text() != "" {
		t.Errorf("expected one empty page, got %q", ex.Pages)
	}
}
