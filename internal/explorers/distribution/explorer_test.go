package distribution_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/errors"
	"explorergen/internal/explorers/common"
	"explorergen/internal/explorers/distribution"
	"explorergen/internal/testkit"
	"explorergen/internal/tsv"
)

func build(t *testing.T) *explorer.Explorer {
	t.Helper()
	e, err := distribution.New(common.Defaults()).Build(testkit.DistributionSheets())
	require.NoError(t, err)
	return e
}

// column finds the table row defining slug.
func column(t *testing.T, columns *explorer.Table, slug string) explorer.Row {
	t.Helper()
	for i := 0; i < columns.Len(); i++ {
		if columns.Get(i, "slug").String() == slug {
			return columns.Row(i)
		}
	}
	t.Fatalf("no column %s", slug)
	return explorer.Row{}
}

func TestBuildCardinality(t *testing.T) {
	e := build(t)

	// Per checkbox combination and aggregation: mean, median, two thresholds
	// and two decile averages. Two share views follow, and the LIS-only
	// combination has no share template.
	assert.Equal(t, 2*2*6+2, e.Graphers.Len())

	pip := 2 + 8 + 2*6
	wid := 1 * (8 + 2*6)
	lis := 3 * 2 * (8 + 2*6)
	require.Len(t, e.Tables, 1)
	assert.Equal(t, "distribution_main", e.Tables[0].Slug)
	assert.Equal(t, "https://example.org/multisource/distribution.csv", e.Tables[0].URL)
	assert.Equal(t, pip+wid+lis, e.Tables[0].Columns.Len())
	assert.False(t, e.Tables[0].Columns.HasColumn("tableSlug"))
}

func TestBuildReferencesResolve(t *testing.T) {
	assert.NoError(t, explorer.CheckReferences(build(t)))
}

func TestBuildDefaultView(t *testing.T) {
	g := build(t).Graphers
	defaults := g.Filter(func(r explorer.Row) bool { return r.Str("defaultView") == "true" })
	require.Equal(t, 1, defaults.Len())
	assert.Equal(t, "mean_year p0p100_avg_pretax_year mean_dhi_eq_year", defaults.Get(0, "ySlugs").String())
	assert.Equal(t, "Mean income per year (after tax)", defaults.Get(0, "title").String())
	assert.Equal(t, "After tax", defaults.Get(0, "Income type Dropdown").String())
}

func TestBuildGrapherOrder(t *testing.T) {
	g := build(t).Graphers
	cases := []struct {
		row    int
		decile string
		metric string
	}{
		{0, "", "Mean income or consumption"},
		{4, "", "Median income or consumption"},
		{8, "1 (poorest)", "Mean income or consumption, by decile"},
		{12, "1 (poorest)", "Decile thresholds"},
		{16, "1 (poorest)", "Decile shares"},
		{17, "5 (median)", "Decile thresholds"},
		{21, "10 (richest)", "Mean income or consumption, by decile"},
		{25, "10 (richest)", "Decile shares"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.decile, g.Get(tc.row, "Decile Dropdown").String(), "row %d", tc.row)
		assert.Equal(t, tc.metric, g.Get(tc.row, "Metric Dropdown").String(), "row %d", tc.row)
	}

	// Stable within a rank: after tax before before tax, day before year.
	assert.Equal(t, "Mean income per day (after tax)", g.Get(0, "title").String())
	assert.Equal(t, "Mean income per year (after tax)", g.Get(1, "title").String())
	assert.Equal(t, "Mean income per day (before tax)", g.Get(2, "title").String())
}

func TestBuildViewCells(t *testing.T) {
	g := build(t).Graphers

	thr := g.Row(12)
	assert.Equal(t, "Threshold income marking the poorest decile (after tax)", thr.Str("title"))
	assert.Equal(t, "decile1_thr_day p10p20_thr_pretax_day thr_p10_dhi_eq_day", thr.Str("ySlugs"))
	assert.Equal(t, "Day", thr.Str("Aggregation Radio"))
	assert.Equal(t, "This is the level of income below which 10% of the population falls.", thr.Str("subtitle"))
	assert.Equal(t, "true", thr.Str("yScaleToggle"))

	share := g.Row(16)
	assert.Equal(t, "Income share of the poorest decile (after tax)", share.Str("title"))
	assert.Equal(t, "decile1_share p0p10_share_pretax share_d1_dhi_eq", share.Str("ySlugs"))
	assert.Equal(t, "", share.Str("Aggregation Radio"))
	assert.Equal(t, "", share.Str("note"))
	assert.Equal(t, "", share.Str("yScaleToggle"))

	assert.Equal(t, "distribution_main", share.Str("tableSlug"))
	assert.Equal(t, "0", share.Str("yAxisMin"))
	assert.Equal(t, "2019", share.Str("mapTargetTime"))
	assert.Equal(t, "entity", share.Str("selectedFacetStrategy"))
	assert.Equal(t, "false", share.Str("hasMapTab"))
	assert.Equal(t, "chart", share.Str("tab"))
}

func TestBuildSourceCheckboxes(t *testing.T) {
	g := build(t).Graphers
	lisOnly := g.Filter(func(r explorer.Row) bool { return r.Str("Income type Dropdown") == "Before tax" })
	require.Equal(t, 12, lisOnly.Len())
	for i := 0; i < lisOnly.Len(); i++ {
		row := lisOnly.Row(i)
		assert.Equal(t, "false", row.Str("PIP Checkbox"))
		assert.Equal(t, "false", row.Str("WID Checkbox"))
		assert.Equal(t, "true", row.Str("LIS Checkbox"))
		assert.NotEqual(t, "Decile shares", row.Str("Metric Dropdown"))
	}
}

func TestBuildColumnCells(t *testing.T) {
	columns := build(t).Tables[0].Columns
	assert.Equal(t, []string{
		"name", "slug", "type", "description", "unit", "shortUnit",
		"colorScaleNumericBins", "colorScaleScheme", "transform",
		"sourceName", "dataPublishedBy", "sourceLink",
		"colorScaleNumericMinValue", "tolerance", "colorScaleEqualSizeBins",
	}, columns.Columns())

	country := columns.Row(0)
	assert.Equal(t, "country", country.Str("slug"))
	assert.Equal(t, "EntityName", country.Str("type"))
	assert.Equal(t, "World Bank Poverty and Inequality Platform (PIP) (2022)", country.Str("sourceName"))

	pipMean := column(t, columns, "mean_year")
	assert.Equal(t, "The mean level of income or consumption per year.", pipMean.Str("description"))
	assert.Equal(t, "500;1000;5000", pipMean.Str("colorScaleNumericBins"))
	assert.Equal(t, "multiplyBy mean 365", pipMean.Str("transform"))
	assert.Equal(t, "5", pipMean.Str("tolerance"))
	assert.Equal(t, "0", pipMean.Str("colorScaleNumericMinValue"))

	pipShare := column(t, columns, "decile10_share")
	assert.Equal(t, "richest decile (PIP)", pipShare.Str("name"))
	assert.Equal(t, "%", pipShare.Str("shortUnit"))
	assert.Equal(t, "20;30;40", pipShare.Str("colorScaleNumericBins"))

	widMean := column(t, columns, "p0p100_avg_pretax")
	assert.Equal(t, "Mean income.<br><br>This is pretax national income. Income is before taxes. Estimated from tax records.", widMean.Str("description"))
	assert.Equal(t, "international-$ in 2021 prices", widMean.Str("unit"))
	assert.Equal(t, "", widMean.Str("transform"))
	assert.Equal(t, "World Inequality Database (WID.world) (2023)", widMean.Str("sourceName"))

	widAvg := column(t, columns, "p90p100_avg_pretax_day")
	assert.Equal(t, "Richest decile (WID)", widAvg.Str("name"))
	assert.Equal(t, "50;100;200", widAvg.Str("colorScaleNumericBins"))
	assert.Equal(t, "multiplyBy p90p100_avg_pretax 1", widAvg.Str("transform"))

	lisMean := column(t, columns, "mean_dhi_eq")
	assert.Equal(t, "Mean income (LIS)", lisMean.Str("name"))
	assert.Equal(t, "Mean income.<br><br>This is disposable household income. Income is after tax.<br><br>Household income Equivalized by the square root of household size.", lisMean.Str("description"))
	assert.Equal(t, "Luxembourg Income Study (LIS) (2023)", lisMean.Str("sourceName"))

	lisThr := column(t, columns, "thr_p50_mi_pc_year")
	assert.Equal(t, "Fifth decile (LIS)", lisThr.Str("name"))
	assert.Equal(t, "Purples", lisThr.Str("colorScaleScheme"))
	assert.Equal(t, "multiplyBy thr_p50_mi_pc 365", lisThr.Str("transform"))
}

func TestBuildLayout(t *testing.T) {
	data, err := tsv.Marshal(build(t))
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "explorerTitle\tIncomes Across the Distribution Explorer - Source comparison\t\t\t\t\t\n"))
	assert.Contains(t, text, "isPublished\ttrue\t\t\t\t\t\n")
	assert.Contains(t, text, "\ntable\thttps://example.org/multisource/distribution.csv\tdistribution_main\ncolumns\tdistribution_main\n\n\tname\tslug\ttype\t")

	doc, err := tsv.ParseExplorer(text)
	require.NoError(t, err)
	assert.Equal(t, tsv.DocumentOf(build(t)), doc)
}

func TestBuildMissingLink(t *testing.T) {
	set := testkit.DistributionSheets()
	ref := sheet.Ref{DocumentID: distribution.DocumentID, Name: "merged_tables"}
	set[ref] = sheet.New(ref, []string{"name", "link"}, [][]string{{"distribution_main", " "}})

	_, err := distribution.New(common.Defaults()).Build(set)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	assert.Contains(t, err.Error(), "distribution_main")
}

func TestBuildMissingSheet(t *testing.T) {
	set := testkit.DistributionSheets()
	delete(set, sheet.Ref{DocumentID: distribution.PIPDocumentID, Name: "income_aggregation"})

	_, err := distribution.New(common.Defaults()).Build(set)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}
