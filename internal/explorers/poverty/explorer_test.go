package poverty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/errors"
	"explorergen/internal/explorers/common"
	"explorergen/internal/explorers/poverty"
	"explorergen/internal/testkit"
	"explorergen/internal/tsv"
)

func build(t *testing.T) *explorer.Explorer {
	t.Helper()
	p := common.Defaults()
	p.ConsumptionSpells, p.IncomeSpells = 1, 2
	e, err := poverty.New(p).Build(testkit.PovertySheets())
	require.NoError(t, err)
	return e
}

func TestBuildCardinality(t *testing.T) {
	e := build(t)

	// 2 surveys x (6 metrics x 2 absolute lines + 6 metrics x 1 relative line)
	views := 2 * (6*2 + 6*1)
	assert.Equal(t, 2*views, e.Graphers.Len(), "map views plus their spell copies")

	require.Len(t, e.Tables, 2+views)
	assert.Equal(t, "inc_or_cons", e.Tables[0].Slug)
	assert.Equal(t, "income", e.Tables[1].Slug)
	assert.Equal(t, 18, e.Tables[0].Columns.Len())
	for _, tb := range e.Tables[2:] {
		assert.Equal(t, 3, tb.Columns.Len(), tb.Slug)
	}
	assert.Equal(t, "inc_or_cons_headcount_ratio_100", e.Tables[2].Slug)
	assert.Equal(t, "income_headcount_ratio_100", e.Tables[3].Slug)
}

func TestBuildReferencesResolve(t *testing.T) {
	assert.NoError(t, explorer.CheckReferences(build(t)))
}

func TestBuildColumns(t *testing.T) {
	e := build(t)
	assert.Equal(t, []string{
		"title", "ySlugs", "Metric Dropdown", "Poverty line Dropdown",
		"Household survey data type Dropdown", "tableSlug", "subtitle", "note",
		"sourceDesc", "type", "yAxisMin", "facet", "selectedFacetStrategy",
		"hasMapTab", "tab", "mapTargetTime",
		"Show breaks between less comparable surveys Checkbox",
		"relatedQuestionText", "relatedQuestionUrl", "defaultView",
	}, e.Graphers.Columns())
	assert.Equal(t, []string{
		"name", "slug", "sourceName", "description", "sourceLink", "dataPublishedBy",
		"unit", "shortUnit", "tolerance", "type", "colorScaleNumericMinValue",
		"colorScaleNumericBins", "colorScaleEqualSizeBins", "colorScaleScheme",
	}, e.Tables[0].Columns.Columns())
	assert.Equal(t, "name", e.Tables[2].Columns.Columns()[0])
	assert.False(t, e.Tables[2].Columns.HasColumn("master_var"))
}

func TestBuildCellRendering(t *testing.T) {
	e := build(t)
	cols := e.Tables[0].Columns
	assert.Equal(t, "5", cols.Get(0, "tolerance").String())
	assert.Equal(t, "0.0", cols.Get(0, "colorScaleNumericMinValue").String())
	assert.Equal(t, "", cols.Get(2, "unit").String(), "headcount has no unit")

	g := e.Graphers
	assert.Equal(t, "0.0", g.Get(0, "yAxisMin").String())
	assert.Equal(t, "2019", g.Get(0, "mapTargetTime").String())
	last := g.Len() - 1
	assert.Equal(t, "", g.Get(last, "mapTargetTime").String())
	assert.Equal(t, "consumption_spell_1 income_spell_1 income_spell_2", g.Get(last, "ySlugs").String())
	assert.Equal(t, "entity", g.Get(last, "facet").String())
}

func TestBuildDefaultView(t *testing.T) {
	e := build(t)
	var defaults []int
	for i := 0; i < e.Graphers.Len(); i++ {
		if e.Graphers.Get(i, "defaultView").String() == "true" {
			defaults = append(defaults, i)
		}
	}
	require.Len(t, defaults, 1)
	row := e.Graphers.Row(defaults[0])
	assert.Equal(t, "headcount_ratio_215", row.Str("ySlugs"))
	assert.Equal(t, "inc_or_cons", row.Str("tableSlug"))
	assert.Equal(t, "Share below $2.15", row.Str("title"))
}

func TestBuildTexts(t *testing.T) {
	e := build(t)
	g := e.Graphers
	gap := g.Filter(func(r explorer.Row) bool { return r.Str("ySlugs") == "poverty_gap_index_215" })
	require.Equal(t, 2, gap.Len())
	assert.Equal(t, "Poverty gap index at $2.15 a day", gap.Get(0, "title").String())
	assert.Contains(t, gap.Get(1, "note").String(), "disposable income per capita")

	rel := g.Filter(func(r explorer.Row) bool { return r.Str("ySlugs") == "total_shortfall_50_median" })
	require.Equal(t, 2, rel.Len())
	assert.Equal(t, "Total shortfall from a poverty line of 50% of the median income or consumption", rel.Get(0, "title").String())
}

func TestBuildLayout(t *testing.T) {
	data, err := tsv.Marshal(build(t))
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "explorerTitle\tPoverty Data Explorer of World Bank data: Expanded metrics\t\t\t\t\t\n"))
	assert.Contains(t, text, "selection\tMozambique\tNigeria\tKenya\tBangladesh\tBolivia\tWorld\n")
	assert.Contains(t, text, "\ngraphers\n\ttitle\tySlugs\t")
	assert.Contains(t, text, "\ntable\thttps://raw.githubusercontent.com/owid/notebooks/main/BetterDataDocs/JoeHasell/PIP/data/ppp_2017/final/OWID_internal_upload/explorer_database/income/poverty_income.csv\tincome\ncolumns\tincome\n\n\tname\tslug\t")
	assert.Contains(t, text, "/explorer_database/comparability_data/inc_or_cons/headcount_ratio_215.csv\tinc_or_cons_headcount_ratio_215\n")

	doc, err := tsv.ParseExplorer(text)
	require.NoError(t, err)
	assert.Equal(t, tsv.DocumentOf(build(t)), doc)
}

func TestBuildMalformedSheet(t *testing.T) {
	set := testkit.PovertySheets()
	ref := sheet.Ref{DocumentID: poverty.DocumentID, Name: "survey_type"}
	set[ref] = sheet.New(ref, []string{"table_name", "text"}, [][]string{{"income", "income"}})

	_, err := poverty.New(common.Defaults()).Build(set)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeMalformedSheet))
}
