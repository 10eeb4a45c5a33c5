// Package outline reconstructs a section/subsection/body outline from the
// linear text of a course-note document.
package outline

import "github.com/dgallion1/notesgest/internal/materials"

// Titles of the synthetic record used when no heading structure is found.
const (
	FallbackSection    = "内容"
	FallbackSubsection = "全部内容"
)

// Extract normalizes raw text and builds its records. A document with text
// but no recognizable structure yields one record holding the whole text; an
// empty document yields none.
func Extract(raw string) []materials.Record {
	text := Normalize(raw)
	if text == "" {
		return nil
	}

	var b Builder
	for l := range Classify(text) {
		b.Feed(l)
	}
	records := b.Finish()

	if len(records) == 0 {
		return []materials.Record{{
			Section:    FallbackSection,
			Subsection: FallbackSubsection,
			Content:    text,
		}}
	}
	return records
}
