// Package gsheets fetches worksheets from the Google Sheets gviz export endpoint.
package gsheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"explorergen/domain/sheet"
	"explorergen/internal"
	"explorergen/internal/errors"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config controls how sheets are requested.
type Config struct {
	BaseURL string
	Format  string
	Timeout time.Duration
}

// Reader fetches worksheets over HTTP. It is safe for concurrent use.
type Reader struct {
	config     Config
	httpClient *http.Client
	logger     *internal.Logger
}

// NewReader creates a reader. A nil logger uses the default logger.
func NewReader(config Config, logger *internal.Logger) *Reader {
	if config.Format == "" {
		config.Format = FormatCSV
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Reader{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// Fetch downloads one worksheet and parses it into a sheet.
func (r *Reader) Fetch(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error) {
	startTime := time.Now()
	url := ref.URL(r.config.BaseURL, r.config.Format)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", ref)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.ExternalServiceError("gsheets", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, errors.ExternalServiceError("gsheets", fmt.Errorf("reading %s: %w", ref, err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ExternalServiceError("gsheets",
			fmt.Errorf("sheet %s returned status %d: %s", ref, resp.StatusCode, truncate(body, 200)))
	}

	var headers []string
	var rows [][]string
	switch r.config.Format {
	case FormatJSON:
		headers, rows, err = parseJSON(body)
	default:
		headers, rows, err = parseCSV(body)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.WithCode(errors.CodeMalformedSheet, err), "parsing sheet %s", ref)
	}

	r.logger.Debug("[SheetFetcher] %s fetched in %.2fms (%d columns, %d rows)",
		ref, float64(time.Since(startTime).Nanoseconds())/1e6, len(headers), len(rows))

	return sheet.New(ref, headers, rows), nil
}

func parseCSV(body []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty sheet")
	}
	return records[0], records[1:], nil
}

// parseJSON reads the gviz JSON response, which arrives wrapped as
// google.visualization.Query.setResponse({...});
func parseJSON(body []byte) ([]string, [][]string, error) {
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end < start {
		return nil, nil, fmt.Errorf("no JSON payload in gviz response")
	}
	payload := body[start : end+1]
	if !gjson.ValidBytes(payload) {
		return nil, nil, fmt.Errorf("invalid JSON payload in gviz response")
	}

	if status := gjson.GetBytes(payload, "status").String(); status == "error" {
		return nil, nil, fmt.Errorf("gviz error: %s", gjson.GetBytes(payload, "errors.0.detailed_message").String())
	}

	var headers []string
	gjson.GetBytes(payload, "table.cols").ForEach(func(_, col gjson.Result) bool {
		label := col.Get("label").String()
		if label == "" {
			label = col.Get("id").String()
		}
		headers = append(headers, label)
		return true
	})
	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("gviz response has no columns")
	}

	var rows [][]string
	gjson.GetBytes(payload, "table.rows").ForEach(func(_, row gjson.Result) bool {
		values := make([]string, len(headers))
		i := 0
		row.Get("c").ForEach(func(_, cell gjson.Result) bool {
			if i < len(values) && cell.Type != gjson.Null {
				values[i] = cellText(cell)
			}
			i++
			return true
		})
		rows = append(rows, values)
		return true
	})
	return headers, rows, nil
}

// cellText prefers the formatted value f, which matches the CSV export
// ("1.90" rather than 1.9), and falls back to the raw value v.
func cellText(cell gjson.Result) string {
	if f := cell.Get("f"); f.Exists() && f.Type != gjson.Null {
		return f.String()
	}
	return cell.Get("v").String()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
