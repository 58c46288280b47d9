package tsv

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"explorergen/domain/explorer"
	"explorergen/internal/errors"
)

const indent = "\t"

// Every columns line is followed by a blank line. The earlier LIS-only
// explorer file had a single newline there. Keep the blank line so every
// explorer shares one layout and ParseExplorer reads them all.
const columnsTerminator = "\n\n"

// WriteExplorer writes e in the explorer layout: the header block, then the
// indented graphers block, then one table block per data table.
func WriteExplorer(w io.Writer, e *explorer.Explorer) error {
	bw := bufio.NewWriter(w)

	width := e.Header.Width()
	header := make([][]string, 0, len(e.Header.Entries))
	for _, entry := range e.Header.Entries {
		rec := make([]string, width)
		rec[0] = entry.Key
		copy(rec[1:], entry.Values)
		header = append(header, rec)
	}
	bw.WriteString(Encode(header))

	bw.WriteString("\ngraphers\n")
	bw.WriteString(Indent(Encode(e.Graphers.Records()), indent))

	for _, tb := range e.Tables {
		bw.WriteString("\ntable\t" + tb.URL + "\t" + tb.Slug)
		bw.WriteString("\ncolumns\t" + tb.Slug + columnsTerminator)
		bw.WriteString(Indent(Encode(tb.Columns.Records()), indent))
	}
	return bw.Flush()
}

// Marshal returns the encoded explorer.
func Marshal(e *explorer.Explorer) ([]byte, error) {
	var b strings.Builder
	if err := WriteExplorer(&b, e); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// TableDocument is one parsed table block.
type TableDocument struct {
	URL     string
	Slug    string
	Columns [][]string
}

// Document is the parsed form of an explorer file. Header lines have their
// trailing empty fields removed. Graphers and table columns start with their
// column-name record.
type Document struct {
	Header   [][]string
	Graphers [][]string
	Tables   []TableDocument
}

// DocumentOf renders e into the form ParseExplorer returns.
func DocumentOf(e *explorer.Explorer) Document {
	doc := Document{Graphers: e.Graphers.Records()}
	for _, entry := range e.Header.Entries {
		doc.Header = append(doc.Header, trimTrailing(append([]string{entry.Key}, entry.Values...)))
	}
	for _, tb := range e.Tables {
		doc.Tables = append(doc.Tables, TableDocument{URL: tb.URL, Slug: tb.Slug, Columns: tb.Columns.Records()})
	}
	return doc
}

// ParseExplorer reads the explorer layout written by WriteExplorer.
func ParseExplorer(text string) (Document, error) {
	var doc Document
	var headerLines []string
	var body *strings.Builder
	var blocks []*strings.Builder
	inBlocks := false
	// open is set while a quoted field spans lines. Indent leaves
	// whitespace-only lines bare, so those continuation lines carry no prefix.
	open := false

	for n, line := range strings.Split(text, "\n") {
		if open {
			switch {
			case !inBlocks:
				headerLines = append(headerLines, line)
			case body == nil:
				return doc, malformed(n, "quoted field outside a block")
			case strings.TrimSpace(line) == "":
				body.WriteString(line + "\n")
			default:
				body.WriteString(strings.TrimPrefix(line, indent) + "\n")
			}
			open = toggles(open, line)
			continue
		}

		switch {
		case strings.TrimSpace(line) == "":
			// Separator, or a record of empty fields left unindented.
			if body != nil && line != "" {
				body.WriteString(line + "\n")
			}
		case strings.HasPrefix(line, indent):
			if body == nil {
				return doc, malformed(n, "indented line outside a block")
			}
			rec := strings.TrimPrefix(line, indent)
			body.WriteString(rec + "\n")
			open = toggles(false, rec)
		case line == "graphers":
			inBlocks = true
			body = &strings.Builder{}
			blocks = append(blocks, body)
		case strings.HasPrefix(line, "table\t"):
			parts := strings.Split(line, "\t")
			if len(parts) != 3 {
				return doc, malformed(n, "table line needs a url and a slug")
			}
			inBlocks = true
			doc.Tables = append(doc.Tables, TableDocument{URL: parts[1], Slug: parts[2]})
			body = nil
		case strings.HasPrefix(line, "columns\t"):
			if len(doc.Tables) == 0 {
				return doc, malformed(n, "columns line without a table line")
			}
			if slug := strings.TrimPrefix(line, "columns\t"); slug != doc.Tables[len(doc.Tables)-1].Slug {
				return doc, malformed(n, fmt.Sprintf("columns %q do not match table %q", slug, doc.Tables[len(doc.Tables)-1].Slug))
			}
			body = &strings.Builder{}
			blocks = append(blocks, body)
		case !inBlocks:
			headerLines = append(headerLines, line)
			open = toggles(false, line)
		default:
			return doc, malformed(n, "unexpected line "+fmt.Sprintf("%q", line))
		}
	}
	if open {
		return doc, errors.InvalidInput("explorer file ends inside a quoted field")
	}

	header, err := Decode(strings.Join(headerLines, "\n"))
	if err != nil {
		return doc, errors.Wrap(errors.WithCode(errors.CodeInvalidInput, err), "decoding header")
	}
	for _, rec := range header {
		doc.Header = append(doc.Header, trimTrailing(rec))
	}

	if len(blocks) != len(doc.Tables)+1 {
		return doc, errors.InvalidInput("explorer file has no graphers block or a table without columns")
	}
	if doc.Graphers, err = Decode(blocks[0].String()); err != nil {
		return doc, errors.Wrap(errors.WithCode(errors.CodeInvalidInput, err), "decoding graphers")
	}
	doc.Graphers = pad(doc.Graphers)
	for i := range doc.Tables {
		cols, err := Decode(blocks[i+1].String())
		if err != nil {
			return doc, errors.Wrapf(errors.WithCode(errors.CodeInvalidInput, err), "decoding table %s", doc.Tables[i].Slug)
		}
		doc.Tables[i].Columns = pad(cols)
	}
	return doc, nil
}

// toggles flips open when line holds an odd number of quote characters.
// Encode doubles embedded quotes, so only field delimiters change parity.
func toggles(open bool, line string) bool {
	return open != (strings.Count(line, `"`)%2 == 1)
}

func malformed(line int, msg string) error {
	return errors.InvalidInput(fmt.Sprintf("line %d: %s", line+1, msg))
}
