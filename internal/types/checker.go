// Package types defines the core data model: checker entries, the catalog,
// and the report structures serialized by the output formatters.
package types

import "sort"

// Entry describes one static-analyzer checker known to the compiler.
type Entry struct {
	// Name is the dotted, hierarchical checker identifier (e.g. "unix.Malloc").
	Name string `json:"name"`

	// Description is the help text the compiler prints for this checker.
	Description string `json:"description"`

	// Active reports whether the checker is enabled by default
	// (or by one of the loaded plugins) without explicit user opt-in.
	Active bool `json:"active"`
}

// Catalog maps checker names to their entries. It is built once per query
// and never mutated afterward.
type Catalog map[string]Entry

// Names returns all checker names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all entries sorted by checker name.
func (c Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c))
	for _, name := range c.Names() {
		entries = append(entries, c[name])
	}
	return entries
}

// CountActive returns the number of entries marked active.
func (c Catalog) CountActive() int {
	n := 0
	for _, e := range c {
		if e.Active {
			n++
		}
	}
	return n
}
