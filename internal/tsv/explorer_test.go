package tsv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/domain/explorer"
	"explorergen/internal/errors"
)

func sample() *explorer.Explorer {
	e := explorer.New("sample")
	e.Header.
		Add("explorerTitle", "Inequality Data Explorer").
		Add("selection", "Chile", "Brazil", "South Africa").
		Add("wpBlockId", "").
		Add("isPublished", "false")

	e.Graphers.NewRow().
		Set("title", "Gini coefficient").
		Set("ySlugs", "gini_dhi_pc").
		Set("tableSlug", "lis").
		Set("yAxisMin", explorer.Float(0)).
		Set("mapTargetTime", 2019).
		Set("defaultView", "true")
	e.Graphers.NewRow().
		Set("title", `The "Palma" ratio`).
		Set("ySlugs", "palma_ratio_dhi_pc").
		Set("tableSlug", "lis")

	cols := explorer.NewTable()
	cols.NewRow().Set("name", "Country").Set("slug", "country").Set("type", "EntityName")
	cols.NewRow().Set("name", "Gini").Set("slug", "gini_dhi_pc").Set("tolerance", 5)
	cols.NewRow().Set("name", "Palma").Set("slug", "palma_ratio_dhi_pc").Set("tolerance", 5)
	e.AddTable("https://example.org/lis.csv", "lis", cols)
	return e
}

const sampleText = "explorerTitle\tInequality Data Explorer\t\t\n" +
	"selection\tChile\tBrazil\tSouth Africa\n" +
	"wpBlockId\t\t\t\n" +
	"isPublished\tfalse\t\t\n" +
	"\ngraphers\n" +
	"\ttitle\tySlugs\ttableSlug\tyAxisMin\tmapTargetTime\tdefaultView\n" +
	"\tGini coefficient\tgini_dhi_pc\tlis\t0.0\t2019\ttrue\n" +
	"\t\"The \"\"Palma\"\" ratio\"\tpalma_ratio_dhi_pc\tlis\t\t\t\n" +
	"\ntable\thttps://example.org/lis.csv\tlis" +
	"\ncolumns\tlis\n\n" +
	"\tname\tslug\ttype\ttolerance\n" +
	"\tCountry\tcountry\tEntityName\t\n" +
	"\tGini\tgini_dhi_pc\t\t5\n" +
	"\tPalma\tpalma_ratio_dhi_pc\t\t5\n"

func TestWriteExplorerLayout(t *testing.T) {
	data, err := Marshal(sample())
	require.NoError(t, err)
	if diff := cmp.Diff(sampleText, string(data)); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExplorerRoundTrip(t *testing.T) {
	e := sample()
	data, err := Marshal(e)
	require.NoError(t, err)

	doc, err := ParseExplorer(string(data))
	require.NoError(t, err)
	if diff := cmp.Diff(DocumentOf(e), doc); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExplorerEmptyRow(t *testing.T) {
	e := sample()
	e.Graphers.NewRow()
	data, err := Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n\t\t\t\t\t\n\ntable")

	doc, err := ParseExplorer(string(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", "", "", "", ""}, doc.Graphers[3])
}

func TestParseExplorerMalformed(t *testing.T) {
	tests := map[string]string{
		"no graphers":       "explorerTitle\tx\n",
		"columns mismatch":  "explorerTitle\tx\n\ngraphers\n\ta\n\ntable\tu\tone\ncolumns\ttwo\n\n\tslug\n",
		"orphan columns":    "explorerTitle\tx\n\ngraphers\n\ta\ncolumns\tone\n",
		"bad table line":    "explorerTitle\tx\n\ngraphers\n\ta\n\ntable\tu\n",
		"stray indentation": "\ta\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseExplorer(text)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestParseExplorerMultilineCells(t *testing.T) {
	tests := map[string]string{
		"blank line":           "first paragraph\n\nsecond paragraph",
		"whitespace-only line": "first\n \nsecond",
		"tab-only line":        "first\n\t\nsecond",
		"leading tab":          "first\n\tsecond",
		"quotes across lines":  "a \"quoted\n\nphrase\" here",
		"trailing newline":     "ends with a break\n",
	}
	for name, description := range tests {
		t.Run(name, func(t *testing.T) {
			e := sample()
			e.Tables[0].Columns.Row(1).Set("description", description)
			e.Header.Add("explorerSubtitle", "line one\n\nline two")

			data, err := Marshal(e)
			require.NoError(t, err)

			doc, err := ParseExplorer(string(data))
			require.NoError(t, err)
			if diff := cmp.Diff(DocumentOf(e), doc); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, description, doc.Tables[0].Columns[2][4])
		})
	}
}

func TestParseExplorerUnterminatedQuote(t *testing.T) {
	_, err := ParseExplorer("explorerTitle\tx\n\ngraphers\n\t\"open\n\nstill open\n")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
