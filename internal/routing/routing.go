// Package routing maps source document filenames to the (level, category)
// buckets their records belong in.
package routing

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/notesgest/internal/materials"
)

// Target is one destination bucket.
type Target struct {
	Level    materials.Level    `json:"level" yaml:"level"`
	Category materials.Category `json:"category" yaml:"category"`
}

func (t Target) String() string {
	return string(t.Level) + "/" + string(t.Category)
}

// siblings lists the real levels a pseudo-level fans out to.
var siblings = map[materials.Level][]materials.Level{
	materials.LevelB: {materials.LevelB1, materials.LevelB2},
}

// fanOutCategories are the categories for which a pseudo-level entry is
// copied into its siblings instead of its own bucket.
var fanOutCategories = map[materials.Category]bool{
	materials.CategoryGrammar: true,
}

// Table maps exact document identifiers to targets. Keys are NFC-normalized.
type Table struct {
	entries map[string]Target
}

// NewTable builds a Table, validating every entry.
func NewTable(entries map[string]Target) (*Table, error) {
	t := &Table{entries: make(map[string]Target, len(entries))}
	for id, target := range entries {
		if _, err := materials.ParseLevel(string(target.Level)); err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		if _, err := materials.ParseCategory(string(target.Category)); err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		key := norm.NFC.String(id)
		if _, dup := t.entries[key]; dup {
			return nil, fmt.Errorf("%s: duplicate identifier after normalization", id)
		}
		t.entries[key] = target
	}
	return t, nil
}

// LoadTable reads a YAML mapping of identifier to {level, category}.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routing table: %w", err)
	}
	var entries map[string]Target
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse routing table %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("routing table %s has no entries", path)
	}
	t, err := NewTable(entries)
	if err != nil {
		return nil, fmt.Errorf("routing table %s: %w", path, err)
	}
	return t, nil
}

// Lookup returns the raw entry for id without fan-out.
func (t *Table) Lookup(id string) (Target, bool) {
	target, ok := t.entries[norm.NFC.String(id)]
	return target, ok
}

// Resolve returns every bucket the records of id go to. The boolean is false
// for identifiers the table does not know.
func (t *Table) Resolve(id string) ([]Target, bool) {
	target, ok := t.Lookup(id)
	if !ok {
		return nil, false
	}
	if sibs, shared := siblings[target.Level]; shared && fanOutCategories[target.Category] {
		out := make([]Target, 0, len(sibs))
		for _, l := range sibs {
			out = append(out, Target{Level: l, Category: target.Category})
		}
		return out, true
	}
	return []Target{target}, true
}

// Len is the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Identifiers returns the table keys in sorted order.
func (t *Table) Identifiers() []string {
	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
