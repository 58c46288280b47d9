package workbook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"explorergen/domain/sheet"
	"explorergen/internal/errors"
)

const (
	LayoutXLSX = "xlsx"
	LayoutCSV  = "csv"
)

// SnapshotWriter stores fetched sheets in a layout Reader can serve.
type SnapshotWriter struct {
	dir    string
	layout string
}

// NewSnapshotWriter writes under dir using layout (xlsx or csv).
func NewSnapshotWriter(dir, layout string) (*SnapshotWriter, error) {
	switch layout {
	case LayoutXLSX, LayoutCSV:
	case "":
		layout = LayoutXLSX
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown snapshot layout %q", layout))
	}
	return &SnapshotWriter{dir: dir, layout: layout}, nil
}

// Write stores every sheet and returns the written paths.
func (w *SnapshotWriter) Write(sheets []*sheet.Sheet) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating snapshot directory")
	}

	byDoc := make(map[string][]*sheet.Sheet)
	for _, s := range sheets {
		byDoc[s.Ref.DocumentID] = append(byDoc[s.Ref.DocumentID], s)
	}
	docs := make([]string, 0, len(byDoc))
	for doc := range byDoc {
		docs = append(docs, doc)
	}
	sort.Strings(docs)

	var written []string
	for _, doc := range docs {
		var paths []string
		var err error
		if w.layout == LayoutCSV {
			paths, err = w.writeCSV(doc, byDoc[doc])
		} else {
			var path string
			path, err = w.writeXLSX(doc, byDoc[doc])
			paths = []string{path}
		}
		if err != nil {
			return written, errors.Wrapf(err, "writing snapshot of %s", doc)
		}
		written = append(written, paths...)
	}
	return written, nil
}

func (w *SnapshotWriter) writeXLSX(doc string, sheets []*sheet.Sheet) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	keepDefault := false
	for i, s := range sheets {
		if s.Ref.Name == defaultSheet {
			keepDefault = true
		}
		idx, err := f.NewSheet(s.Ref.Name)
		if err != nil {
			return "", err
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		for r, row := range s.Rows() {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return "", err
			}
			values := make([]interface{}, len(row))
			for j, v := range row {
				values[j] = v
			}
			if err := f.SetSheetRow(s.Ref.Name, cell, &values); err != nil {
				return "", err
			}
		}
	}
	if !keepDefault && len(sheets) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return "", err
		}
	}

	path := filepath.Join(w.dir, doc+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func (w *SnapshotWriter) writeCSV(doc string, sheets []*sheet.Sheet) ([]string, error) {
	docDir := filepath.Join(w.dir, doc)
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return nil, err
	}
	var paths []string
	for _, s := range sheets {
		path := filepath.Join(docDir, s.Ref.Name+".csv")
		file, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		cw := csv.NewWriter(file)
		if err := cw.WriteAll(s.Rows()); err != nil {
			file.Close()
			return paths, err
		}
		if err := file.Close(); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
