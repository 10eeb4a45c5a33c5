package pipeline

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/dgallion1/notesgest/internal/routing"
)

// Status is the outcome of one document in a run.
type Status string

const (
	StatusProcessed Status = "processed" // records appended to every target
	StatusEmpty     Status = "empty"     // no text; no bucket touched
	StatusSkipped   Status = "skipped"   // no routing entry
	StatusFailed    Status = "failed"    // open or parse error
)

// DocResult is the per-document line of a Report.
type DocResult struct {
	Name        string           `json:"name"`
	Status      Status           `json:"status"`
	Targets     []routing.Target `json:"targets"`
	Pages       int              `json:"pages"`
	Records     int              `json:"records"`
	ContentHash string           `json:"content_hash,omitempty"`
	Error       string           `json:"error,omitempty"`
	DurationMs  int64            `json:"duration_ms"`
}

// Report summarizes one run.
type Report struct {
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Documents  []DocResult `json:"documents"`

	// Records is the total after pseudo-levels are removed.
	Records int `json:"records"`
	// Dropped counts records that only reached a pseudo-level.
	Dropped int `json:"dropped"`

	Durations StatsSnapshot `json:"durations"`
}

func newReport() *Report {
	return &Report{StartedAt: time.Now(), Documents: []DocResult{}}
}

func (r *Report) add(res DocResult) {
	if res.Targets == nil {
		res.Targets = []routing.Target{}
	}
	r.Documents = append(r.Documents, res)
}

// finish stamps the end time and summarizes the durations of every document
// that was actually read.
func (r *Report) finish() {
	r.FinishedAt = time.Now()
	var values []int64
	for _, d := range r.Documents {
		if d.Status != StatusSkipped {
			values = append(values, d.DurationMs)
		}
	}
	r.Durations = summarize(values)
}

// Count returns how many documents ended with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, d := range r.Documents {
		if d.Status == s {
			n++
		}
	}
	return n
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
