// Package workbook reads and writes offline copies of dimension sheets, either
// as one .xlsx workbook per document or as a directory of .csv files.
package workbook

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"explorergen/domain/sheet"
	"explorergen/internal"
	"explorergen/internal/errors"
)

// Reader serves sheets from a snapshot directory laid out as
// <dir>/<documentID>/<sheet>.csv or <dir>/<documentID>.xlsx.
type Reader struct {
	dir    string
	logger *internal.Logger
}

// NewReader creates a reader rooted at dir.
func NewReader(dir string, logger *internal.Logger) *Reader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Reader{dir: dir, logger: logger}
}

// Fetch reads one worksheet, preferring the CSV layout.
func (r *Reader) Fetch(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	startTime := time.Now()

	var rows [][]string
	var err error
	csvPath := filepath.Join(r.dir, ref.DocumentID, ref.Name+".csv")
	xlsxPath := filepath.Join(r.dir, ref.DocumentID+".xlsx")
	switch {
	case fileExists(csvPath):
		rows, err = readCSV(csvPath)
	case fileExists(xlsxPath):
		rows, err = readWorksheet(xlsxPath, ref.Name)
	default:
		return nil, errors.NotFound(fmt.Sprintf("sheet %s under %s", ref, r.dir))
	}
	if err != nil {
		return nil, errors.Wrapf(errors.WithCode(errors.CodeMalformedSheet, err), "reading sheet %s", ref)
	}
	if len(rows) == 0 {
		return nil, errors.MalformedSheet(ref.Name, "header row")
	}

	r.logger.Debug("[DataReader] %s read in %.2fms (%d rows)",
		ref, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows)-1)
	return sheet.New(ref, rows[0], rows[1:]), nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readWorksheet(path, name string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(name); idx < 0 {
		return nil, fmt.Errorf("workbook %s has no worksheet %q", filepath.Base(path), name)
	}
	return f.GetRows(name)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
