package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/notesgest/internal/materials"
)

func TestBuild_WritesArtifact(t *testing.T) {
	dir := writeNotes(t, map[string]string{
		"a.txt": "1. Nombres\nun, deux, trois",
		"b.txt": "1. Pronoms\nje, tu, il, elle",
	})
	out := filepath.Join(t.TempDir(), "client", "public", "materials-data.json")

	m, report, err := newTestRunner(t).Build(context.Background(), dir, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Records != 3 {
		t.Errorf("records = %d, want 3", report.Records)
	}

	loaded, err := materials.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if loaded.Count() != m.Count() {
		t.Errorf("artifact has %d records, run had %d", loaded.Count(), m.Count())
	}
	if got := loaded.Level(materials.LevelB2).Grammar; len(got) != 1 || got[0].Section != "Pronoms" {
		t.Errorf("unexpected B2 grammar in artifact: %+v", got)
	}
}

func TestBuild_WriteFailureIsFatal(t *testing.T) {
	dir := writeNotes(t, map[string]string{"a.txt": "1. Nombres\nun, deux, trois"})
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, report, err := newTestRunner(t).Build(context.Background(), dir, filepath.Join(blocker, "out.json"))
	if err == nil {
		t.Fatal("expected write error when output parent is a file")
	}
	if report == nil || report.Records != 1 {
		t.Errorf("expected the run report alongside the error, got %+v", report)
	}
}

func TestBuild_MissingNotesDir(t *testing.T) {
	_, _, err := newTestRunner(t).Build(context.Background(), filepath.Join(t.TempDir(), "none"), "out.json")
	if err == nil {
		t.Fatal("expected error for missing notes directory")
	}
}
