package gsheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/domain/sheet"
	"explorergen/internal/errors"
)

var ref = sheet.Ref{DocumentID: "doc123", Name: "welfare"}

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/d/doc123/gviz/tq", r.URL.Path)
		assert.Equal(t, "welfare", r.URL.Query().Get("sheet"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCSV(t *testing.T) {
	srv := newServer(t, http.StatusOK, "\"slug\",\"title\",\"scale_gini\"\n\"dhi\",\"Disposable, household\",\"0.2;0.3\"\n\"mi\",\"Market\"\n")
	reader := NewReader(Config{BaseURL: srv.URL, Timeout: time.Second}, nil)

	s, err := reader.Fetch(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, []string{"slug", "title", "scale_gini"}, s.Headers)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "Disposable, household", s.Records[0]["title"])
	assert.Equal(t, "", s.Records[1]["scale_gini"])
	assert.Equal(t, ref, s.Ref)
}

func TestFetchJSON(t *testing.T) {
	body := `/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","status":"ok","table":{"cols":[{"id":"A","label":"cents","type":"number"},{"id":"B","label":"dollars_text","type":"string"}],"rows":[{"c":[{"v":215.0,"f":"215"},{"v":"$2.15"}]},{"c":[{"v":365.0},null]}]}});`
	srv := newServer(t, http.StatusOK, body)
	reader := NewReader(Config{BaseURL: srv.URL, Format: FormatJSON}, nil)

	s, err := reader.Fetch(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, []string{"cents", "dollars_text"}, s.Headers)
	assert.Equal(t, []string{"215", "365"}, s.Column("cents"))
	assert.Equal(t, []string{"$2.15", ""}, s.Column("dollars_text"))
}

func TestParseJSONPrefersFormattedValue(t *testing.T) {
	body := []byte(`google.visualization.Query.setResponse({"status":"ok","table":{"cols":[{"label":"cents"},{"label":"dollars"},{"label":"note"}],"rows":[{"c":[{"v":190.0,"f":"190"},{"v":1.9,"f":"1.90"},{"v":"kept","f":null}]}]}});`)

	headers, rows, err := parseJSON(body)
	require.NoError(t, err)
	assert.Equal(t, []string{"cents", "dollars", "note"}, headers)
	assert.Equal(t, [][]string{{"190", "1.90", "kept"}}, rows)
}

func TestFetchJSONError(t *testing.T) {
	srv := newServer(t, http.StatusOK, `google.visualization.Query.setResponse({"status":"error","errors":[{"detailed_message":"Invalid sheet"}]});`)
	reader := NewReader(Config{BaseURL: srv.URL, Format: FormatJSON}, nil)

	_, err := reader.Fetch(context.Background(), ref)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMalformedSheet, errors.GetCode(err))
	assert.Contains(t, err.Error(), "Invalid sheet")
}

func TestFetchBadStatus(t *testing.T) {
	srv := newServer(t, http.StatusNotFound, "no such sheet")
	reader := NewReader(Config{BaseURL: srv.URL}, nil)

	_, err := reader.Fetch(context.Background(), ref)
	require.Error(t, err)
	assert.Equal(t, errors.CodeExternalService, errors.GetCode(err))
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchEmptyBody(t *testing.T) {
	srv := newServer(t, http.StatusOK, "")
	_, err := NewReader(Config{BaseURL: srv.URL}, nil).Fetch(context.Background(), ref)
	assert.Equal(t, errors.CodeMalformedSheet, errors.GetCode(err))
}

func TestFetchCancelled(t *testing.T) {
	srv := newServer(t, http.StatusOK, "slug\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(Config{BaseURL: srv.URL}, nil).Fetch(ctx, ref)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
