package materials

import "fmt"

// Level is a proficiency tier.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"

	// LevelB is a routing-only level for material shared by B1 and B2.
	// It never survives Finalize.
	LevelB Level = "B"
)

// Levels lists the output levels in serialization order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2}

// PseudoLevels lists transient levels removed by Finalize.
var PseudoLevels = []Level{LevelB}

// ParseLevel accepts output levels and pseudo-levels.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if l.IsReal() || l.IsPseudo() {
		return l, nil
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// IsReal reports whether l appears in final output.
func (l Level) IsReal() bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}

// IsPseudo reports whether l is a transient routing level.
func (l Level) IsPseudo() bool {
	for _, v := range PseudoLevels {
		if v == l {
			return true
		}
	}
	return false
}

// Category is a content domain bucket.
type Category string

const (
	CategoryVocabulary Category = "vocabulary"
	CategoryGrammar    Category = "grammar"
	CategoryReading    Category = "reading"
	CategoryOthers     Category = "others"
)

// Categories lists the closed category set in serialization order.
var Categories = []Category{CategoryVocabulary, CategoryGrammar, CategoryReading, CategoryOthers}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Record is one extracted unit of course material.
type Record struct {
	Section    string `json:"section"`
	Subsection string `json:"subsection"`
	Content    string `json:"content"`
}

// Bucket holds the records of one level, split by category.
// Field order is the serialization order.
type Bucket struct {
	Vocabulary []Record `json:"vocabulary"`
	Grammar    []Record `json:"grammar"`
	Reading    []Record `json:"reading"`
	Others     []Record `json:"others"`
}

func newBucket() *Bucket {
	return &Bucket{
		Vocabulary: []Record{},
		Grammar:    []Record{},
		Reading:    []Record{},
		Others:     []Record{},
	}
}

// Category returns the records stored under c.
func (b *Bucket) Category(c Category) []Record {
	if p := b.slot(c); p != nil {
		return *p
	}
	return nil
}

// Len is the total number of records across categories.
func (b *Bucket) Len() int {
	return len(b.Vocabulary) + len(b.Grammar) + len(b.Reading) + len(b.Others)
}

func (b *Bucket) slot(c Category) *[]Record {
	switch c {
	case CategoryVocabulary:
		return &b.Vocabulary
	case CategoryGrammar:
		return &b.Grammar
	case CategoryReading:
		return &b.Reading
	case CategoryOthers:
		return &b.Others
	}
	return nil
}

// Materials is the aggregate of every document's records, keyed by level.
// It is append-only until Finalize.
type Materials struct {
	levels    map[Level]*Bucket
	finalized bool
}

// New returns a Materials with every level and category initialized empty.
func New() *Materials {
	m := &Materials{levels: make(map[Level]*Bucket)}
	for _, l := range Levels {
		m.levels[l] = newBucket()
	}
	for _, l := range PseudoLevels {
		m.levels[l] = newBucket()
	}
	return m
}

// Append copies recs onto the end of the (level, category) bucket.
func (m *Materials) Append(level Level, category Category, recs ...Record) error {
	b, ok := m.levels[level]
	if !ok {
		return fmt.Errorf("level %q not present", level)
	}
	p := b.slot(category)
	if p == nil {
		return fmt.Errorf("unknown category %q", category)
	}
	*p = append(*p, recs...)
	return nil
}

// Level returns the bucket for l, or nil if l is absent.
func (m *Materials) Level(l Level) *Bucket {
	return m.levels[l]
}

// Finalize drops pseudo-levels. Records routed only to a pseudo-level are
// discarded with it; the return value is how many.
func (m *Materials) Finalize() int {
	dropped := 0
	for _, l := range PseudoLevels {
		if b, ok := m.levels[l]; ok {
			dropped += b.Len()
			delete(m.levels, l)
		}
	}
	m.finalized = true
	return dropped
}

// Finalized reports whether Finalize has run.
func (m *Materials) Finalized() bool {
	return m.finalized
}

// Count totals records across output levels.
func (m *Materials) Count() int {
	n := 0
	for _, l := range Levels {
		if b := m.levels[l]; b != nil {
			n += b.Len()
		}
	}
	return n
}
