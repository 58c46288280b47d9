package lis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/errors"
	"explorergen/internal/explorers/common"
	"explorergen/internal/explorers/lis"
	"explorergen/internal/testkit"
	"explorergen/internal/tsv"
)

func build(t *testing.T) *explorer.Explorer {
	t.Helper()
	e, err := lis.New(common.Defaults()).Build(testkit.LISSheets())
	require.NoError(t, err)
	return e
}

func TestBuildCardinality(t *testing.T) {
	e := build(t)

	// 2 scales x (3 welfare x 5 metrics + 5 comparisons)
	assert.Equal(t, 2*(3*5+5), e.Graphers.Len())
	require.Len(t, e.Tables, 1)
	assert.Equal(t, "lis_main", e.Tables[0].Slug)
	assert.Equal(t, "https://example.org/lis/main.csv", e.Tables[0].URL)
	assert.Equal(t, 2+3*2*5, e.Tables[0].Columns.Len())
}

func TestBuildReferencesResolve(t *testing.T) {
	assert.NoError(t, explorer.CheckReferences(build(t)))
}

func TestBuildComparisonViews(t *testing.T) {
	g := build(t).Graphers
	cmp := g.Filter(func(r explorer.Row) bool {
		return r.Str("Income measure Dropdown") == "After tax vs. before tax"
	})
	require.Equal(t, 10, cmp.Len())
	assert.Equal(t, "gini_mi_eq gini_dhi_eq", cmp.Get(0, "ySlugs").String())
	assert.Equal(t, "Gini coefficient (after tax vs. before tax)", cmp.Get(0, "title").String())
	assert.Equal(t, "entity", cmp.Get(0, "selectedFacetStrategy").String())
	assert.Equal(t, "chart", cmp.Get(0, "tab").String())
	assert.Equal(t, "true", cmp.Get(0, "Adjust for cost sharing within households (equivalized income) Checkbox").String())
	assert.Equal(t, "headcount_ratio_50_median_mi_pc headcount_ratio_50_median_dhi_pc", cmp.Get(9, "ySlugs").String())
	assert.Equal(t, "false", cmp.Get(9, "Adjust for cost sharing within households (equivalized income) Checkbox").String())
}

func TestBuildDefaultView(t *testing.T) {
	g := build(t).Graphers
	defaults := g.Filter(func(r explorer.Row) bool { return r.Str("defaultView") == "true" })
	require.Equal(t, 1, defaults.Len())
	assert.Equal(t, "gini_dhi_pc", defaults.Get(0, "ySlugs").String())
	assert.Equal(t, "Gini coefficient (after tax)", defaults.Get(0, "title").String())
}

func TestBuildCellRendering(t *testing.T) {
	e := build(t)
	cols := e.Tables[0].Columns
	assert.Equal(t, []string{
		"name", "slug", "type", "description", "unit", "shortUnit",
		"colorScaleNumericBins", "colorScaleNumericMinValue", "colorScaleScheme",
		"sourceName", "dataPublishedBy", "sourceLink", "tolerance", "colorScaleEqualSizeBins",
	}, cols.Columns())
	assert.Equal(t, "", cols.Get(0, "colorScaleNumericMinValue").String())
	assert.Equal(t, "1.0", cols.Get(2, "colorScaleNumericMinValue").String())
	assert.Equal(t, "100.0", cols.Get(3, "colorScaleNumericMinValue").String())
	assert.Equal(t, "0.0", cols.Get(6, "colorScaleNumericMinValue").String(), "min_relative_poverty of mi")
	assert.Equal(t, "5", cols.Get(2, "tolerance").String())
	assert.Equal(t, "Luxembourg Income Study (2023)", cols.Get(2, "sourceName").String())
	assert.True(t, strings.HasPrefix(cols.Get(2, "description").String(),
		"The Gini coefficient measures inequality on a scale from 0 to 1. Higher values indicate higher inequality.<br><br>Income before taxes and benefits.<br><br>Income is equivalized.<br><br>NOTES ON HOW WE PROCESSED THIS INDICATOR<br><br>"))

	g := e.Graphers
	assert.Equal(t, "0", g.Get(0, "yAxisMin").String())
	assert.Equal(t, "2019", g.Get(0, "mapTargetTime").String())
	assert.Equal(t, "Equivalized by the square root of household size.", g.Get(0, "note").String())
	assert.Equal(t, "The Gini coefficient measures inequality on a scale from 0 to 1. Higher values indicate higher inequality. Inequality is measured before tax.",
		g.Get(0, "subtitle").String())
}

func TestBuildLayout(t *testing.T) {
	data, err := tsv.Marshal(build(t))
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "explorerTitle\tInequality Data Explorer: Luxembourg Income Study data\t\t\t\t\t\n"))
	assert.Contains(t, text, "googleSheet\thttps://docs.google.com/spreadsheets/d/"+lis.DocumentID+"\t\t\t\t\t\n")
	assert.Contains(t, text, "pickerColumnSlugs\tgini_mi_eq share_p100_mi_eq palma_ratio_mi_eq headcount_ratio_50_median_mi_eq gini_dhi_eq share_p100_dhi_eq palma_ratio_dhi_eq headcount_ratio_50_median_dhi_eq\t\t\t\t\t\n")
	assert.Contains(t, text, "\ntable\thttps://example.org/lis/main.csv\tlis_main\ncolumns\tlis_main\n\n\tname\tslug\ttype\t")

	doc, err := tsv.ParseExplorer(text)
	require.NoError(t, err)
	assert.Equal(t, tsv.DocumentOf(build(t)), doc)
}

func TestBuildMalformedSheet(t *testing.T) {
	set := testkit.LISSheets()
	ref := sheet.Ref{DocumentID: lis.DocumentID, Name: "equivalence_scales"}
	set[ref] = sheet.New(ref, []string{"slug", "description", "note"}, [][]string{{"eq", "x", "y"}})

	_, err := lis.New(common.Defaults()).Build(set)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeMalformedSheet))
}
