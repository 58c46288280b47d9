package explorer

import (
	"fmt"
	"strings"

	"explorergen/internal/errors"
)

// HeaderEntry is one key line of the explorer header.
type HeaderEntry struct {
	Key    string
	Values []string
}

// Header is the ordered key/value block at the top of an explorer file.
type Header struct {
	Entries []HeaderEntry
}

// Add appends a key line and returns the header for chaining.
func (h *Header) Add(key string, values ...string) *Header {
	h.Entries = append(h.Entries, HeaderEntry{Key: key, Values: values})
	return h
}

// Width is the number of fields of the widest line, key included.
func (h *Header) Width() int {
	w := 0
	for _, e := range h.Entries {
		if n := len(e.Values) + 1; n > w {
			w = n
		}
	}
	return w
}

// Lookup returns the values of key.
func (h *Header) Lookup(key string) ([]string, bool) {
	for _, e := range h.Entries {
		if e.Key == key {
			return e.Values, true
		}
	}
	return nil, false
}

// TableBlock is one data table of an explorer: where the platform loads it
// from, its slug, and the metadata of its columns.
type TableBlock struct {
	URL     string
	Slug    string
	Columns *Table
}

// Explorer is a generated explorer definition.
type Explorer struct {
	Name     string
	Header   *Header
	Graphers *Table
	Tables   []TableBlock
}

// New returns an empty explorer.
func New(name string) *Explorer {
	return &Explorer{Name: name, Header: &Header{}, Graphers: NewTable()}
}

// AddTable appends a table block.
func (e *Explorer) AddTable(url, slug string, columns *Table) {
	e.Tables = append(e.Tables, TableBlock{URL: url, Slug: slug, Columns: columns})
}

// Table returns the block with slug.
func (e *Explorer) Table(slug string) (TableBlock, bool) {
	for _, tb := range e.Tables {
		if tb.Slug == slug {
			return tb, true
		}
	}
	return TableBlock{}, false
}

// Stats summarizes the size of an explorer.
type Stats struct {
	GrapherRows int
	TableBlocks int
	ColumnRows  int
}

func (e *Explorer) Stats() Stats {
	s := Stats{GrapherRows: e.Graphers.Len(), TableBlocks: len(e.Tables)}
	for _, tb := range e.Tables {
		s.ColumnRows += tb.Columns.Len()
	}
	return s
}

// CheckReferences verifies that every slug listed in a grapher row's ySlugs
// is a column slug of the table block named by the row's tableSlug.
func CheckReferences(e *Explorer) error {
	slugs := make(map[string]map[string]bool, len(e.Tables))
	for _, tb := range e.Tables {
		set := make(map[string]bool, tb.Columns.Len())
		for _, s := range tb.Columns.Column("slug") {
			set[s] = true
		}
		slugs[tb.Slug] = set
	}

	var broken []string
	for i := 0; i < e.Graphers.Len(); i++ {
		row := e.Graphers.Row(i)
		table := row.Str("tableSlug")
		set, ok := slugs[table]
		if !ok {
			broken = append(broken, fmt.Sprintf("row %d: unknown table %q", i, table))
			continue
		}
		for _, slug := range strings.Fields(row.Str("ySlugs")) {
			if !set[slug] {
				broken = append(broken, fmt.Sprintf("row %d: %s not in %s", i, slug, table))
			}
		}
	}
	if len(broken) > 0 {
		return errors.BrokenReferences(e.Name, broken)
	}
	return nil
}
