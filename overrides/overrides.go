// Package overrides implements the static JSON reordering table: a
// hand-curated alternative to the hash-order emulator for lists whose
// legacy order was captured by eye rather than recomputed. The table maps
// class local names to per-list-kind orderings.
package overrides

import (
	"fmt"
	"os"

	"github.com/sugawarayuuta/sonnet"

	specerrors "github.com/vocabgen/specdoc/errors"
	"github.com/vocabgen/specdoc/vocab"
)

// Table is a parsed overrides file. The zero value has no entries and
// applies nothing.
type Table struct {
	entries map[string]map[vocab.ListKind][]string

	// Strict makes Apply report names that are not in the document-order
	// list instead of dropping them. Off by default: hand-edited tables
	// routinely go stale against regenerated vocabularies.
	Strict bool
}

// Load reads and parses an overrides file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	return Parse(data)
}

// Parse decodes an overrides table from JSON of the shape
//
//	{"Person": {"domain-properties": ["knows", "img"], ...}, ...}
func Parse(data []byte) (*Table, error) {
	var raw map[string]map[vocab.ListKind][]string
	if err := sonnet.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return &Table{entries: raw}, nil
}

// Has reports whether the table holds an ordering for the class and kind.
func (t *Table) Has(class string, kind vocab.ListKind) bool {
	return t != nil && t.entries[class][kind] != nil
}

// Apply returns the hand-curated order for the class and kind, applied to
// docOrder. ok is false when the table has no entry, in which case the
// caller falls through to the hash-order emulator.
//
// Entries tolerate drift against the vocabulary, matching the legacy
// generator's handling of stale tables: names in the entry but not in
// docOrder are dropped (or reported when Strict), and names in docOrder
// the entry misses keep their document order at the tail.
func (t *Table) Apply(class string, kind vocab.ListKind, docOrder []string) (ordered []string, ok bool, err error) {
	if !t.Has(class, kind) {
		return nil, false, nil
	}
	entry := t.entries[class][kind]

	present := make(map[string]bool, len(docOrder))
	for _, name := range docOrder {
		present[name] = true
	}

	ordered = make([]string, 0, len(docOrder))
	taken := make(map[string]bool, len(entry))
	for _, name := range entry {
		if !present[name] {
			if t.Strict {
				return nil, false, fmt.Errorf("%w: %q in %s/%s", specerrors.ErrUnknownTerm, name, class, kind)
			}
			continue
		}
		if taken[name] {
			continue
		}
		taken[name] = true
		ordered = append(ordered, name)
	}
	for _, name := range docOrder {
		if !taken[name] {
			taken[name] = true
			ordered = append(ordered, name)
		}
	}
	return ordered, true, nil
}
