// Package sheet models the dimension spreadsheets explorers are built from.
package sheet

import (
	"fmt"
	"net/url"
	"strings"

	"explorergen/internal/errors"
)

// Ref names one worksheet of a Google Sheets document.
type Ref struct {
	DocumentID string
	Name       string
}

func (r Ref) String() string { return r.DocumentID + "/" + r.Name }

// DocumentURL is the human-facing link of the spreadsheet.
func (r Ref) DocumentURL() string {
	return "https://docs.google.com/spreadsheets/d/" + r.DocumentID
}

// URL is the gviz export link for the worksheet in the given format (csv or json).
func (r Ref) URL(base, format string) string {
	if base == "" {
		base = "https://docs.google.com"
	}
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:%s&sheet=%s",
		strings.TrimRight(base, "/"), r.DocumentID, format, url.QueryEscape(r.Name))
}

// Record is one sheet row keyed by trimmed header.
type Record map[string]string

// Sheet is a fetched worksheet.
type Sheet struct {
	Ref     Ref
	Headers []string
	Records []Record
}

// New builds a sheet from a header row and data rows. Headers are trimmed and
// short rows are padded with empty values.
func New(ref Ref, headers []string, rows [][]string) *Sheet {
	s := &Sheet{Ref: ref, Headers: make([]string, len(headers))}
	for i, h := range headers {
		s.Headers[i] = strings.TrimSpace(h)
	}
	for _, row := range rows {
		rec := make(Record, len(s.Headers))
		for i, h := range s.Headers {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		s.Records = append(s.Records, rec)
	}
	return s
}

func (s *Sheet) Len() int { return len(s.Records) }

// Has reports whether the sheet carries col.
func (s *Sheet) Has(col string) bool {
	for _, h := range s.Headers {
		if h == col {
			return true
		}
	}
	return false
}

// Require fails with a malformed-sheet error naming every missing column.
func (s *Sheet) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !s.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return errors.MalformedSheet(s.Ref.Name, missing...)
	}
	return nil
}

// Column returns the values of col in row order.
func (s *Sheet) Column(col string) []string {
	out := make([]string, len(s.Records))
	for i, r := range s.Records {
		out[i] = r[col]
	}
	return out
}

// Rows returns the sheet as a header record followed by data records.
func (s *Sheet) Rows() [][]string {
	out := [][]string{append([]string(nil), s.Headers...)}
	for _, r := range s.Records {
		row := make([]string, len(s.Headers))
		for i, h := range s.Headers {
			row[i] = r[h]
		}
		out = append(out, row)
	}
	return out
}

// Set is the collection of sheets one builder reads.
type Set map[Ref]*Sheet

// Get returns the sheet for ref or a not-found error.
func (s Set) Get(ref Ref) (*Sheet, error) {
	sh, ok := s[ref]
	if !ok || sh == nil {
		return nil, errors.NotFound(fmt.Sprintf("sheet %q", ref.String()))
	}
	return sh, nil
}
