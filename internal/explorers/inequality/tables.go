package inequality

import (
	"fmt"

	"explorergen/domain/explorer"
	"explorergen/internal/explorers/common"
)

const newLine = "<br><br>"

var (
	lisSource = common.Source{
		Name:        "Luxembourg Income Study (LIS) (2022)",
		PublishedBy: common.LIS.PublishedBy,
		Link:        common.LIS.Link,
	}
	widSource = common.Source{
		Name:        "World Inequality Database (WID.world) (2022)",
		PublishedBy: common.WID.PublishedBy,
		Link:        common.WID.Link,
	}
)

// Descriptions shared by both sources. w is the welfare type, such as
// "income" or "wealth".

func giniDescription(w string) string {
	return fmt.Sprintf("The Gini coefficient is a measure of the inequality of the %s distribution in a population. Higher values indicate a higher level of inequality.", w)
}

func topShareDescription(w, top string) string {
	return fmt.Sprintf("This is the %s of the richest %s as a share of total %s.", w, top, w)
}

func p90p10Description(w string) string {
	return fmt.Sprintf("P90 is the the level of %s below which 90%% of the population lives. P10 is the level of %s below which 10%% of the population lives. This variable gives the ratio of the two. It is a measure of inequality that indicates the gap between the richest and poorest tenth of the population. It tells you how many times richer someone just in the the poorest tenth would need to be in order to be counted in the richest tenth.", w, w)
}

func p90p50Description(w string) string {
	return fmt.Sprintf("P90 is the the level of %s above which 10%% of the population lives. P50 is the median – the level of %s below which 50%% of the population lives. This variable gives the ratio of the two. It is a measure of inequality within the top half of the distribution. It tells you how many times richer someone in the middle of the distribution would need to be in order to be counted in the richest tenth.", w, w)
}

func p50p10Description(w string) string {
	return fmt.Sprintf("P50 is the median – the level of %s below which 50%% of the population lives. P10 is the the level of %s below which 10%% of the population lives. This variable gives the ratio of the two. It is a measure of inequality within the bottom half of the distribution. It tells you how many times richer someone just in the the poorest tenth would need to be in order to be reach the median.", w, w)
}

func palmaDescription(w string) string {
	return fmt.Sprintf("The Palma ratio is a measure of inequality: it is the share of total %s of the top 10%% divided by the share of the bottom 40%%.", w)
}

type column struct {
	name, slug, description, unit, bins, scheme string
}

func addLISColumn(t *explorer.Table, c column) {
	t.NewRow().
		Set("name", c.name).
		Set("slug", c.slug).
		Set("description", c.description).
		Set("unit", c.unit).
		Set("shortUnit", c.unit).
		Set("type", "Numeric").
		Set("colorScaleNumericBins", c.bins).
		Set("colorScaleScheme", c.scheme)
}

func addWIDColumn(t *explorer.Table, c column) {
	t.NewRow().
		Set("name", c.name).
		Set("slug", c.slug).
		Set("description", c.description).
		Set("unit", c.unit).
		Set("shortUnit", c.unit).
		Set("type", "Numeric").
		Set("colorScaleNumericBins", c.bins).
		Set("colorScaleEqualSizeBins", "true").
		Set("colorScaleScheme", c.scheme)
}

// buildLISTables emits, for every LIS table, the entity columns and eight
// metrics per welfare type and equivalence scale.
func (b *Builder) buildLISTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, tab := range d.lisTables {
		start := t.Len()
		common.AddEntityColumns(t)
		for _, w := range d.lisWelfare {
			wt := w.WelfareType
			for _, eq := range d.scales {
				label := fmt.Sprintf("(%s, %s)", common.Capitalize(w.TechnicalText), eq.Text)
				suffix := w.Slug + "_" + eq.Slug
				context := fmt.Sprintf("%sThis is %s. %s%sHousehold %s %s", newLine, w.TechnicalText, w.Subtitle, newLine, wt, eq.Note)

				addLISColumn(t, column{
					name:        "Gini coefficient " + label,
					slug:        "gini_" + suffix,
					description: giniDescription(wt) + context,
					bins:        w.ScaleGini,
					scheme:      "Reds",
				})
				addLISColumn(t, column{
					name:        common.Capitalize(wt) + " share of the richest 10% " + label,
					slug:        "share_p90_" + suffix,
					description: topShareDescription(wt, "10%") + context,
					unit:        "%",
					bins:        w.ScaleTop10,
					scheme:      "Greens",
				})
				addLISColumn(t, column{
					name:        common.Capitalize(wt) + " share of the bottom 50% " + label,
					slug:        "share_bottom50_" + suffix,
					description: fmt.Sprintf("This is the %s of the poorest 50%% as a share of total %s.", wt, wt) + context,
					unit:        "%",
					bins:        w.ScaleBottom50,
					scheme:      "Blues",
				})
				addLISColumn(t, column{
					name:        "P90/P10 ratio " + label,
					slug:        "p90_p10_ratio_" + suffix,
					description: p90p10Description(wt) + context,
					bins:        w.ScaleP90P10Ratio,
					scheme:      "OrRd",
				})
				addLISColumn(t, column{
					name:        "P90/P50 ratio " + label,
					slug:        "p90_p50_ratio_" + suffix,
					description: p90p50Description(wt) + context,
					bins:        w.ScaleP90P50Ratio,
					scheme:      "Purples",
				})
				addLISColumn(t, column{
					name:        "P50/P10 ratio " + label,
					slug:        "p50_p10_ratio_" + suffix,
					description: p50p10Description(wt) + context,
					bins:        w.ScaleP50P10Ratio,
					scheme:      "YlOrRd",
				})
				addLISColumn(t, column{
					name:        "Palma ratio " + label,
					slug:        "palma_ratio_" + suffix,
					description: palmaDescription(wt) + context,
					bins:        w.ScalePalmaRatio,
					scheme:      "Oranges",
				})
				addLISColumn(t, column{
					name:        fmt.Sprintf("50%% of median %s - share of population below poverty line %s", wt, label),
					slug:        "headcount_ratio_50_median_" + suffix,
					description: fmt.Sprintf("%% of population living in households with %s below 50%% of the median %s.", wt, wt) + context,
					unit:        "%",
					bins:        "5;10;15;20;25;30",
					scheme:      "YlOrBr",
				})
			}
		}
		t.SetFrom(start, "tableSlug", tab.Name)
	}
	lisSource.Stamp(t)
	t.SetAll("colorScaleNumericMinValue", 0)
	t.SetAll("tolerance", b.params.Tolerance)
	t.SetAll("colorScaleEqualSizeBins", "true")
	return t
}

// topShares are the WID top-income groups, with the welfare scale each is
// binned on.
var topShares = []struct {
	slug, group string
	bins        func(w widWelfare) string
}{
	{"p90p100", "10%", func(w widWelfare) string { return w.ScaleTop10 }},
	{"p99p100", "1%", func(w widWelfare) string { return w.ScaleTop1 }},
	{"p99_9p100", "0.1%", func(w widWelfare) string { return w.ScaleTop01 }},
	{"p99_99p100", "0.01%", func(w widWelfare) string { return w.ScaleTop001 }},
	{"p99_999p100", "0.001%", func(w widWelfare) string { return w.ScaleTop0001 }},
}

func (b *Builder) buildWIDTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, tab := range d.widTables {
		start := t.Len()
		common.AddEntityColumns(t)
		for _, w := range d.widWelfare {
			wt := w.WelfareType
			label := "(" + common.Capitalize(w.TechnicalText) + ")"
			context := fmt.Sprintf("%sThis is %s. %s %s", newLine, w.TechnicalText, w.Subtitle, w.Note)

			addWIDColumn(t, column{
				name:        "Gini coefficient " + label,
				slug:        "p0p100_gini_" + w.Slug,
				description: giniDescription(wt) + context,
				bins:        w.ScaleGini,
				scheme:      "Reds",
			})
			for _, top := range topShares {
				addWIDColumn(t, column{
					name:        fmt.Sprintf("%s share of the richest %s %s", common.Capitalize(wt), top.group, label),
					slug:        top.slug + "_share_" + w.Slug,
					description: topShareDescription(wt, top.group) + context,
					unit:        "%",
					bins:        top.bins(w),
					scheme:      "Greens",
				})
			}
			addWIDColumn(t, column{
				name:        "P90/P10 ratio " + label,
				slug:        "p90_p10_ratio_" + w.Slug,
				description: p90p10Description(wt) + context,
				bins:        w.ScaleP90P10Ratio,
				scheme:      "OrRd",
			})
			addWIDColumn(t, column{
				name:        "P90/P50 ratio " + label,
				slug:        "p90_p50_ratio_" + w.Slug,
				description: p90p50Description(wt) + context,
				bins:        w.ScaleP90P50Ratio,
				scheme:      "Purples",
			})
			addWIDColumn(t, column{
				name:        "P50/P10 ratio " + label,
				slug:        "p50_p10_ratio_" + w.Slug,
				description: p50p10Description(wt) + context,
				bins:        w.ScaleP50P10Ratio,
				scheme:      "YlOrRd",
			})
			addWIDColumn(t, column{
				name:        "Palma ratio " + label,
				slug:        "palma_ratio_" + w.Slug,
				description: palmaDescription(wt) + context,
				bins:        w.ScalePalmaRatio,
				scheme:      "Oranges",
			})
		}
		t.SetFrom(start, "tableSlug", tab.Name)
	}
	widSource.Stamp(t)
	t.SetAll("colorScaleNumericMinValue", 0)
	t.SetAll("tolerance", b.params.Tolerance)
	return t
}
