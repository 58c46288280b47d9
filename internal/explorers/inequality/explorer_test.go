package inequality_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/errors"
	"explorergen/internal/explorers/common"
	"explorergen/internal/explorers/inequality"
	"explorergen/internal/testkit"
	"explorergen/internal/tsv"
)

func build(t *testing.T) *explorer.Explorer {
	t.Helper()
	e, err := inequality.New(common.Defaults()).Build(testkit.InequalitySheets())
	require.NoError(t, err)
	return e
}

func TestBuildCardinality(t *testing.T) {
	e := build(t)

	lisViews := 3 * 2 * 8 // welfare x scales x metrics
	widViews := 1 * 10
	assert.Equal(t, lisViews+widViews, e.Graphers.Len())

	require.Len(t, e.Tables, 2)
	assert.Equal(t, "lis_main", e.Tables[0].Slug)
	assert.Equal(t, "https://example.org/lis/main.csv", e.Tables[0].URL)
	assert.Equal(t, 2+lisViews, e.Tables[0].Columns.Len())
	assert.Equal(t, "wid_main", e.Tables[1].Slug)
	assert.Equal(t, 2+widViews, e.Tables[1].Columns.Len())
	assert.False(t, e.Tables[1].Columns.HasColumn("tableSlug"))
}

func TestBuildReferencesResolve(t *testing.T) {
	assert.NoError(t, explorer.CheckReferences(build(t)))
}

func TestBuildDefaultView(t *testing.T) {
	g := build(t).Graphers
	defaults := g.Filter(func(r explorer.Row) bool { return r.Str("defaultView") == "true" })
	require.Equal(t, 1, defaults.Len())
	assert.Equal(t, "gini_di_eq", defaults.Get(0, "ySlugs").String())
	assert.Equal(t, "Income inequality: Gini coefficient (Disposable income, equivalized)", defaults.Get(0, "title").String())
}

func TestBuildSourceDropdown(t *testing.T) {
	g := build(t).Graphers
	wid := g.Filter(func(r explorer.Row) bool { return r.Str("tableSlug") == "wid_main" })
	require.Equal(t, 10, wid.Len())
	for i := 0; i < wid.Len(); i++ {
		assert.Equal(t, "World Inequality Database (WID)", wid.Get(i, "Source Dropdown").String())
		assert.Equal(t, "Estimated from tax records.", wid.Get(i, "note").String())
	}
	assert.Equal(t, "Income inequality: Gini coefficient Before tax", wid.Get(0, "title").String())
	assert.Equal(t, "p0p100_gini_pretax", wid.Get(0, "ySlugs").String())
	assert.Equal(t, "Top 0.001% share", wid.Get(5, "Metric Dropdown").String())
}

func TestBuildCellRendering(t *testing.T) {
	e := build(t)
	lis := e.Tables[0].Columns
	assert.Equal(t, "country", lis.Get(0, "slug").String())
	assert.Equal(t, "EntityName", lis.Get(0, "type").String())
	assert.Equal(t, "0", lis.Get(2, "colorScaleNumericMinValue").String())
	assert.Equal(t, "5", lis.Get(2, "tolerance").String())
	assert.Equal(t, "Luxembourg Income Study (LIS) (2022)", lis.Get(2, "sourceName").String())
	assert.Equal(t, "Gini coefficient (Market household income, equivalized)", lis.Get(2, "name").String())
	assert.Contains(t, lis.Get(2, "description").String(), "<br><br>This is market household income.")

	wid := e.Tables[1].Columns
	assert.Equal(t, "World Inequality Database (WID.world) (2022)", wid.Get(2, "sourceName").String())
	assert.Equal(t, "true", wid.Get(2, "colorScaleEqualSizeBins").String())

	g := e.Graphers
	assert.Equal(t, "0", g.Get(0, "yAxisMin").String())
	assert.Equal(t, "2019", g.Get(0, "mapTargetTime").String())
	assert.Equal(t, "", g.Get(0, "relatedQuestionUrl").String())
}

func TestBuildLayout(t *testing.T) {
	data, err := tsv.Marshal(build(t))
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "explorerTitle\tInequality Data Explorer\t\t\t\t\t\n"))
	assert.Contains(t, text, "explorerSubtitle\t\t\t\t\t\t\n")
	assert.Contains(t, text, "\ntable\thttps://example.org/wid/main.csv\twid_main\ncolumns\twid_main\n\n\tname\tslug\ttype\t")

	doc, err := tsv.ParseExplorer(text)
	require.NoError(t, err)
	assert.Equal(t, tsv.DocumentOf(build(t)), doc)
}

func TestBuildMissingLink(t *testing.T) {
	set := testkit.InequalitySheets()
	ref := sheet.Ref{DocumentID: inequality.LISDocumentID, Name: "all_the_tables"}
	set[ref] = sheet.New(ref, []string{"name", "link"}, [][]string{{"lis_main", "https://example.org/lis/main.csv"}})

	_, err := inequality.New(common.Defaults()).Build(set)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}
