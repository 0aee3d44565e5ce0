package mdast

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// RefDefinition represents a link reference definition
// (e.g., [label]: https://example.com "Optional Title").
type RefDefinition struct {
	// Label is the reference label as written in the source.
	Label string

	// Destination is the URL/path.
	Destination string

	// Title is the optional title.
	Title string
}

// RefTable maps normalized reference labels to their definitions.
// It is filled during block parsing and read during inline parsing, which
// runs after all blocks are collected, so definitions resolve regardless of
// whether they appear before or after their uses. After parsing the table
// is read-only.
type RefTable struct {
	defs map[string]*RefDefinition
}

// NewRefTable creates an empty reference table.
func NewRefTable() *RefTable {
	return &RefTable{defs: make(map[string]*RefDefinition)}
}

// Define records a reference definition. The first definition of a label
// wins; later definitions of the same normalized label are ignored.
// Returns true if the definition was recorded.
func (t *RefTable) Define(label, destination, title string) bool {
	normalized := NormalizeLabel(label)
	if normalized == "" {
		return false
	}
	if _, exists := t.defs[normalized]; exists {
		return false
	}
	t.defs[normalized] = &RefDefinition{
		Label:       label,
		Destination: destination,
		Title:       title,
	}
	return true
}

// Resolve finds the definition for a label, normalizing it first.
func (t *RefTable) Resolve(label string) (*RefDefinition, bool) {
	def, ok := t.defs[NormalizeLabel(label)]
	return def, ok
}

// Len returns the number of distinct definitions.
func (t *RefTable) Len() int {
	return len(t.defs)
}

// Labels returns the normalized labels in sorted order.
func (t *RefTable) Labels() []string {
	labels := make([]string, 0, len(t.defs))
	for label := range t.defs {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// NormalizeLabel normalizes a reference label for matching:
// Unicode case folding plus interior whitespace collapsing, so
// "My  Label" and "my label" name the same definition.
func NormalizeLabel(label string) string {
	label = cases.Fold().String(label)
	return strings.Join(strings.Fields(label), " ")
}
