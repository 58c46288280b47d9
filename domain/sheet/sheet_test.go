package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/internal/errors"
)

var welfareRef = Ref{DocumentID: "doc123", Name: "welfare"}

func TestRefURL(t *testing.T) {
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/doc123/gviz/tq?tqx=out:csv&sheet=welfare",
		welfareRef.URL("", "csv"))
	assert.Equal(t,
		"http://127.0.0.1:1/spreadsheets/d/doc123/gviz/tq?tqx=out:json&sheet=all+the+tables",
		Ref{DocumentID: "doc123", Name: "all the tables"}.URL("http://127.0.0.1:1/", "json"))
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/doc123", welfareRef.DocumentURL())
}

func TestNewTrimsAndPads(t *testing.T) {
	s := New(welfareRef, []string{" slug ", "title"}, [][]string{{"dhi ", "Disposable"}, {"mi"}})
	require.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"slug", "title"}, s.Headers)
	assert.Equal(t, Record{"slug": "dhi", "title": "Disposable"}, s.Records[0])
	assert.Equal(t, "", s.Records[1]["title"])
	assert.Equal(t, []string{"dhi", "mi"}, s.Column("slug"))
	assert.Equal(t, [][]string{{"slug", "title"}, {"dhi", "Disposable"}, {"mi", ""}}, s.Rows())
}

func TestRequire(t *testing.T) {
	s := New(welfareRef, []string{"slug"}, nil)
	require.NoError(t, s.Require("slug"))

	err := s.Require("slug", "title", "note")
	require.Error(t, err)
	assert.Equal(t, errors.CodeMalformedSheet, errors.GetCode(err))
	assert.Contains(t, err.Error(), "missing columns title, note")
}

type povline struct {
	Cents   string  `sheet:"cents"`
	Dollars int     `sheet:"dollars"`
	Scale   Number  `sheet:"scale,optional"`
	Ratio   float64 `sheet:"ratio,optional"`
	Ignored string
}

func TestDecode(t *testing.T) {
	s := New(Ref{Name: "povlines_abs"}, []string{"cents", "dollars", "scale"},
		[][]string{{"215", "2.0", "1.5"}, {"365", "3", ""}})

	got, err := Decode[povline](s)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, povline{Cents: "215", Dollars: 2, Scale: Number{Value: 1.5, Valid: true}}, got[0])
	assert.False(t, got[1].Scale.Valid)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode[povline](New(Ref{Name: "povlines_abs"}, []string{"cents"}, nil))
	assert.Equal(t, errors.CodeMalformedSheet, errors.GetCode(err))

	_, err = Decode[povline](New(Ref{Name: "povlines_abs"}, []string{"cents", "dollars"}, [][]string{{"215", "two"}}))
	require.Error(t, err)
	assert.Equal(t, errors.CodeMalformedSheet, errors.GetCode(err))
	assert.Contains(t, err.Error(), `row 2 column "dollars"`)
}

func TestSetGet(t *testing.T) {
	set := Set{welfareRef: New(welfareRef, nil, nil)}
	_, err := set.Get(welfareRef)
	require.NoError(t, err)
	_, err = set.Get(Ref{DocumentID: "doc123", Name: "tables"})
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
