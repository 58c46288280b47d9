package tsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuoting(t *testing.T) {
	tests := []struct {
		name   string
		record []string
		want   string
	}{
		{"plain", []string{"a", "b c", "d,e"}, "a\tb c\td,e\n"},
		{"tab", []string{"a\tb"}, "\"a\tb\"\n"},
		{"quote", []string{`say "hi"`, "x"}, "\"say \"\"hi\"\"\"\tx\n"},
		{"newline", []string{"one\ntwo", ""}, "\"one\ntwo\"\t\n"},
		{"single quotes untouched", []string{"<a href='x'>"}, "<a href='x'>\n"},
		{"lone empty field", []string{""}, "\"\"\n"},
		{"trailing empties", []string{"k", "", ""}, "k\t\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode([][]string{tt.record}))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := [][]string{
		{"title", "subtitle", "note"},
		{"Gini", `A "quoted" word`, ""},
		{"P90/P10", "tab\tinside", "x"},
	}
	got, err := Decode(Encode(records))
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestIndent(t *testing.T) {
	in := "a\tb\n\t\t\n\nc\n"
	assert.Equal(t, "\ta\tb\n\t\t\n\n\tc\n", Indent(in, "\t"))
	assert.Equal(t, "a\tb\n\t\n\nc\n", Unindent(Indent(in, "\t"), "\t"))
	assert.Equal(t, "", Indent("", "\t"))
}
