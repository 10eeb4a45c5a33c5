package pipeline

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_EmptyInput(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if h := ContentHashHex([]byte{}); h != want {
		t.Errorf("expected hash %q, got %q", want, h)
	}
}

func TestReport_CountAndFinish(t *testing.T) {
	r := newReport()
	r.add(DocResult{Name: "a", Status: StatusProcessed, DurationMs: 10})
	r.add(DocResult{Name: "b", Status: StatusProcessed, DurationMs: 30})
	r.add(DocResult{Name: "c", Status: StatusSkipped})
	r.add(DocResult{Name: "d", Status: StatusFailed, DurationMs: 20})
	r.finish()

	if r.Count(StatusProcessed) != 2 || r.Count(StatusSkipped) != 1 || r.Count(StatusEmpty) != 0 {
		t.Errorf("unexpected counts: %+v", r.Documents)
	}
	if r.Durations.Count != 3 || r.Durations.MinMs != 10 || r.Durations.MaxMs != 30 || r.Durations.AvgMs != 20 {
		t.Errorf("unexpected durations: %+v", r.Durations)
	}
}

func TestReport_JSONUsesEmptyTargets(t *testing.T) {
	r := newReport()
	r.add(DocResult{Name: "notes.pdf", Status: StatusSkipped})
	r.finish()

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `"targets":[]`) {
		t.Errorf("expected empty targets array, got %s", s)
	}
	if strings.Contains(s, `"error"`) || strings.Contains(s, `"content_hash"`) {
		t.Errorf("expected empty optional fields omitted, got %s", s)
	}
}
