// Package tsv reads and writes the tab-separated explorer file format.
package tsv

import (
	"encoding/csv"
	"strings"
)

// Encode writes records as tab-separated lines, each ending in "\n". A field
// is quoted only when it holds a tab, a double quote or a line break, and
// embedded quotes are doubled. A record made of a single empty field is
// written as "" so it survives as a line.
func Encode(records [][]string) string {
	var b strings.Builder
	for _, rec := range records {
		if len(rec) == 1 && rec[0] == "" {
			b.WriteString(`""` + "\n")
			continue
		}
		for i, field := range rec {
			if i > 0 {
				b.WriteByte('\t')
			}
			writeField(&b, field)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeField(b *strings.Builder, field string) {
	if !strings.ContainsAny(field, "\t\"\r\n") {
		b.WriteString(field)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(field, `"`, `""`))
	b.WriteByte('"')
}

// Decode parses tab-separated text. Records may have different lengths.
func Decode(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// Indent prefixes every line of text that holds something other than
// whitespace. Line endings are preserved.
func Indent(text, prefix string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}

// Unindent removes prefix from the start of every line that carries it.
func Unindent(text, prefix string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		b.WriteString(strings.TrimPrefix(line, prefix))
	}
	return b.String()
}

// pad extends every record after the first to the width of the first.
func pad(records [][]string) [][]string {
	if len(records) == 0 {
		return records
	}
	width := len(records[0])
	for i := 1; i < len(records); i++ {
		for len(records[i]) < width {
			records[i] = append(records[i], "")
		}
	}
	return records
}

// trimTrailing drops empty fields from the end of a record.
func trimTrailing(rec []string) []string {
	n := len(rec)
	for n > 0 && rec[n-1] == "" {
		n--
	}
	return rec[:n]
}
