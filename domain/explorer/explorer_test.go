package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/internal/errors"
)

func sampleExplorer() *Explorer {
	e := New("sample")
	e.Header.Add("explorerTitle", "Sample").Add("selection", "Chile", "Brazil")

	cols := NewTable()
	cols.NewRow().Set("slug", "gini_dhi_pc")
	cols.NewRow().Set("slug", "gini_mi_pc")
	e.AddTable("https://example.org/a.csv", "lis_a", cols)

	e.Graphers.NewRow().Set("ySlugs", "gini_dhi_pc gini_mi_pc").Set("tableSlug", "lis_a")
	return e
}

func TestHeaderWidth(t *testing.T) {
	e := sampleExplorer()
	assert.Equal(t, 3, e.Header.Width())
	v, ok := e.Header.Lookup("selection")
	assert.True(t, ok)
	assert.Equal(t, []string{"Chile", "Brazil"}, v)
}

func TestCheckReferences(t *testing.T) {
	e := sampleExplorer()
	require.NoError(t, CheckReferences(e))

	e.Graphers.NewRow().Set("ySlugs", "missing_slug").Set("tableSlug", "lis_a")
	e.Graphers.NewRow().Set("ySlugs", "gini_dhi_pc").Set("tableSlug", "nowhere")

	err := CheckReferences(e)
	require.Error(t, err)
	assert.Equal(t, errors.CodeBrokenReference, errors.GetCode(err))
	assert.Contains(t, err.Error(), "missing_slug not in lis_a")
	assert.Contains(t, err.Error(), `unknown table "nowhere"`)
}

func TestStats(t *testing.T) {
	s := sampleExplorer().Stats()
	assert.Equal(t, Stats{GrapherRows: 1, TableBlocks: 1, ColumnRows: 2}, s)
}
