package outline

import (
	"strings"

	"github.com/dgallion1/notesgest/internal/materials"
)

// Builder accumulates classified lines into records. A record is emitted each
// time a heading closes a run of body text under a known section.
type Builder struct {
	section    string
	subsection string
	pending    []string
	records    []materials.Record
}

// Feed dispatches l to Section, Subsection or Body.
func (b *Builder) Feed(l Line) {
	switch l.Kind {
	case KindSection:
		b.Section(l.Text)
	case KindSubsection:
		b.Subsection(l.Text)
	default:
		b.Body(l.Text)
	}
}

// Section starts a new top-level heading and resets the subsection.
func (b *Builder) Section(text string) {
	b.flush()
	b.pending = b.pending[:0]
	b.section = text
	b.subsection = ""
}

// Subsection starts a new second-level heading under the current section.
func (b *Builder) Subsection(text string) {
	b.flush()
	b.pending = b.pending[:0]
	b.subsection = text
}

// Body queues a content line under the current heading.
func (b *Builder) Body(text string) {
	b.pending = append(b.pending, text)
}

// Finish flushes any trailing body text and returns every record emitted.
func (b *Builder) Finish() []materials.Record {
	b.flush()
	b.pending = b.pending[:0]
	return b.records
}

// flush emits pending body text. Body seen while no section is open is
// never emitted; the caller clears it on the next heading.
func (b *Builder) flush() {
	if b.section == "" || len(b.pending) == 0 {
		return
	}
	sub := b.subsection
	if sub == "" {
		sub = b.section
	}
	b.records = append(b.records, materials.Record{
		Section:    b.section,
		Subsection: sub,
		Content:    strings.Join(b.pending, "\n\n"),
	})
}
