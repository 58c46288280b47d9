package distribution

import (
	"fmt"

	"explorergen/domain/explorer"
	"explorergen/internal/explorers/common"
)

const (
	newLine = "<br><br>"

	prices2017 = "international-$ in 2017 prices"
	prices2021 = "international-$ in 2021 prices"
	pipBins    = "1;2;5;10;20;50;100;100.0001"
)

var (
	pipSource = common.Source{
		Name:        "World Bank Poverty and Inequality Platform (PIP) (2022)",
		PublishedBy: "World Bank. (2022). Poverty and Inequality Platform (version 20220909_2017_01_02_PROD) [Data set]. World Bank Group. https://pip.worldbank.org/. Accessed  2022-10-03.",
		Link:        "https://pip.worldbank.org/",
	}
	widSource = common.Source{
		Name:        "World Inequality Database (WID.world) (2023)",
		PublishedBy: "World Inequality Database (WID), https://wid.world",
		Link:        "https://wid.world",
	}
	lisSource = common.Source{
		Name:        "Luxembourg Income Study (LIS) (2023)",
		PublishedBy: "Luxembourg Income Study (LIS) Database, http://www.lisdatacenter.org (multiple countries; 1967-2020). Luxembourg, LIS.",
		Link:        "https://www.lisdatacenter.org/our-data/lis-database/",
	}
)

// column is one numeric column definition. Aggregable columns get a copy per
// income aggregation that rescales them with a multiplyBy transform.
type column struct {
	name        string
	slug        string
	description string
	unit        string
	bins        string
	scheme      string
	transform   string
	aggregable  bool
}

func addColumn(t *explorer.Table, c column) {
	shortUnit := "$"
	if c.unit == "%" {
		shortUnit = "%"
	}
	t.NewRow().
		Set("name", c.name).
		Set("slug", c.slug).
		Set("description", c.description).
		Set("unit", c.unit).
		Set("shortUnit", shortUnit).
		Set("type", "Numeric").
		Set("colorScaleNumericBins", c.bins).
		Set("colorScaleScheme", c.scheme).
		Set("transform", c.transform)
}

// addAggregated adds base, then one rescaled copy of every aggregable base
// column per aggregation.
func addAggregated(t *explorer.Table, base []column, aggs []aggregation) {
	for _, c := range base {
		addColumn(t, c)
	}
	for _, agg := range aggs {
		for _, c := range base {
			if !c.aggregable {
				continue
			}
			scaled := c
			scaled.slug = c.slug + agg.SlugSuffix
			scaled.transform = fmt.Sprintf("multiplyBy %s %s", c.slug, agg.Multiplier)
			addColumn(t, scaled)
		}
	}
}

func (b *Builder) stamp(t *explorer.Table, s common.Source) *explorer.Table {
	s.Stamp(t)
	t.SetAll("colorScaleNumericMinValue", 0)
	t.SetAll("tolerance", b.params.Tolerance)
	t.SetAll("colorScaleEqualSizeBins", "true")
	return t
}

// buildPIPTables emits the entity columns and the daily PIP distribution
// columns into every merged table. Aggregated PIP columns carry their own
// descriptions and bins.
func (b *Builder) buildPIPTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, tab := range d.links {
		start := t.Len()
		common.AddEntityColumns(t)
		for _, p := range d.pipTables {
			text := p.Text
			addColumn(t, column{
				name:        fmt.Sprintf("Mean %s (PIP)", text),
				slug:        "mean",
				description: fmt.Sprintf("The mean level of %s per day.", text),
				unit:        prices2017,
				bins:        pipBins,
				scheme:      "BuGn",
			})
			addColumn(t, column{
				name:        fmt.Sprintf("Median %s (PIP)", text),
				slug:        "median",
				description: fmt.Sprintf("The level of %s per day below which half of the population live.", text),
				unit:        prices2017,
				bins:        pipBins,
				scheme:      "Blues",
			})
			for _, dec := range d.pipDeciles9 {
				addColumn(t, column{
					name:        dec.Ordinal + " (PIP)",
					slug:        fmt.Sprintf("decile%s_thr", dec.Decile),
					description: fmt.Sprintf("The level of %s per day below which %s0%% of the population falls.", text, dec.Decile),
					unit:        prices2017,
					bins:        pipBins,
					scheme:      "Purples",
				})
			}
			for _, dec := range d.pipDeciles10 {
				addColumn(t, column{
					name:        dec.Ordinal + " (PIP)",
					slug:        fmt.Sprintf("decile%s_avg", dec.Decile),
					description: fmt.Sprintf("The mean %s per day within the %s (tenth of the population).", text, dec.Ordinal),
					unit:        prices2017,
					bins:        pipBins,
					scheme:      "Greens",
				})
			}
			for _, dec := range d.pipDeciles10 {
				addColumn(t, column{
					name:        dec.Ordinal + " (PIP)",
					slug:        fmt.Sprintf("decile%s_share", dec.Decile),
					description: fmt.Sprintf("The %s of the %s (tenth of the population) as a share of total %s.", text, dec.Ordinal, text),
					unit:        "%",
					bins:        dec.ScaleShare,
					scheme:      "OrRd",
				})
			}

			for _, agg := range d.pipAggregations {
				per := agg.Aggregation
				addColumn(t, column{
					name:        fmt.Sprintf("Mean %s (PIP)", text),
					slug:        "mean" + agg.SlugSuffix,
					description: fmt.Sprintf("The mean level of %s per %s.", text, per),
					unit:        prices2017,
					bins:        agg.Scale,
					scheme:      "BuGn",
					transform:   "multiplyBy mean " + agg.Multiplier,
				})
				addColumn(t, column{
					name:        fmt.Sprintf("Median %s (PIP)", text),
					slug:        "median" + agg.SlugSuffix,
					description: fmt.Sprintf("The level of %s per %s below which half of the population live.", text, per),
					unit:        prices2017,
					bins:        agg.Scale,
					scheme:      "Blues",
					transform:   "multiplyBy median " + agg.Multiplier,
				})
				for _, dec := range d.pipDeciles9 {
					slug := fmt.Sprintf("decile%s_thr", dec.Decile)
					addColumn(t, column{
						name:        dec.Ordinal + " (PIP)",
						slug:        slug + agg.SlugSuffix,
						description: fmt.Sprintf("The level of %s per %s below which %s0%% of the population falls.", text, per, dec.Decile),
						unit:        prices2017,
						bins:        agg.Scale,
						scheme:      "Purples",
						transform:   fmt.Sprintf("multiplyBy %s %s", slug, agg.Multiplier),
					})
				}
				for _, dec := range d.pipDeciles10 {
					slug := fmt.Sprintf("decile%s_avg", dec.Decile)
					addColumn(t, column{
						name:        dec.Ordinal + " (PIP)",
						slug:        slug + agg.SlugSuffix,
						description: fmt.Sprintf("The mean %s per %s within the %s (tenth of the population).", text, per, dec.Ordinal),
						unit:        prices2017,
						bins:        agg.Scale,
						scheme:      "Greens",
						transform:   fmt.Sprintf("multiplyBy %s %s", slug, agg.Multiplier),
					})
				}
			}
		}
		t.SetFrom(start, "tableSlug", tab.Name)
	}
	return b.stamp(t, pipSource)
}

// buildWIDTables emits the WID distribution columns per welfare measure into
// every merged table.
func (b *Builder) buildWIDTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, tab := range d.links {
		start := t.Len()
		for _, w := range d.widWelfare {
			wt := w.WelfareType
			context := fmt.Sprintf("%sThis is %s. %s %s", newLine, w.TechnicalText, w.Subtitle, w.Note)

			base := []column{{
				name:        fmt.Sprintf("Mean %s (WID)", wt),
				slug:        "p0p100_avg_" + w.Slug,
				description: fmt.Sprintf("Mean %s.", wt) + context,
				unit:        prices2021,
				bins:        w.ScaleMean,
				scheme:      "BuGn",
				aggregable:  true,
			}, {
				name:        fmt.Sprintf("Median %s (WID)", wt),
				slug:        "median_" + w.Slug,
				description: fmt.Sprintf("This is the level of %s below which 50%% of the population falls.", wt) + context,
				unit:        prices2021,
				bins:        w.ScaleMedian,
				scheme:      "Blues",
				aggregable:  true,
			}}
			for _, dec := range d.widDeciles9 {
				base = append(base, column{
					name:        common.Capitalize(dec.Ordinal) + " (WID)",
					slug:        dec.Notation + "_thr_" + w.Slug,
					description: fmt.Sprintf("The level of %s below which %s0%% of the population falls.", wt, dec.Decile) + context,
					unit:        prices2021,
					bins:        dec.ScaleThr,
					scheme:      "Purples",
					aggregable:  true,
				})
			}
			for _, dec := range d.widDeciles10 {
				base = append(base, column{
					name:        common.Capitalize(dec.Ordinal) + " (WID)",
					slug:        dec.Notation + "_avg_" + w.Slug,
					description: fmt.Sprintf("This is the mean %s within the %s (tenth of the population).", wt, dec.Ordinal) + context,
					unit:        prices2021,
					bins:        dec.ScaleAvg,
					scheme:      "Greens",
					aggregable:  true,
				})
			}
			for _, dec := range d.widDeciles10 {
				base = append(base, column{
					name:        common.Capitalize(dec.Ordinal) + " (WID)",
					slug:        dec.Notation + "_share_" + w.Slug,
					description: fmt.Sprintf("This is the %s of the %s (tenth of the population) as a share of total %s.", wt, dec.Ordinal, wt) + context,
					unit:        "%",
					bins:        dec.ScaleShare,
					scheme:      "OrRd",
				})
			}
			addAggregated(t, base, d.widAggregations)
		}
		t.SetFrom(start, "tableSlug", tab.Name)
	}
	return b.stamp(t, widSource)
}

// buildLISTables emits the LIS distribution columns per welfare measure and
// equivalence scale into every merged table.
func (b *Builder) buildLISTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, tab := range d.links {
		start := t.Len()
		for _, w := range d.lisWelfare {
			wt := w.WelfareType
			for _, eq := range d.scales {
				suffix := w.Slug + "_" + eq.Slug
				context := fmt.Sprintf("%sThis is %s. %s%sHousehold %s %s", newLine, w.TechnicalText, w.Subtitle, newLine, wt, eq.Note)

				base := []column{{
					name:        fmt.Sprintf("Mean %s (LIS)", wt),
					slug:        "mean_" + suffix,
					description: fmt.Sprintf("Mean %s.", wt) + context,
					unit:        prices2017,
					bins:        w.ScaleMean,
					scheme:      "BuGn",
					aggregable:  true,
				}, {
					name:        fmt.Sprintf("Median %s (LIS)", wt),
					slug:        "median_" + suffix,
					description: fmt.Sprintf("The level of %s below which half of the population live.", wt) + context,
					unit:        prices2017,
					bins:        w.ScaleMedian,
					scheme:      "Blues",
					aggregable:  true,
				}}
				for _, dec := range d.lisDeciles9 {
					base = append(base, column{
						name:        common.Capitalize(dec.Ordinal) + " (LIS)",
						slug:        "thr_" + dec.Notation + "_" + suffix,
						description: fmt.Sprintf("The level of %s below which %s0%% of the population falls.", wt, dec.Decile) + context,
						unit:        prices2017,
						bins:        dec.ScaleThr,
						scheme:      "Purples",
						aggregable:  true,
					})
				}
				for _, dec := range d.lisDeciles10 {
					base = append(base, column{
						name:        common.Capitalize(dec.Ordinal) + " (LIS)",
						slug:        "avg_" + dec.Notation + "_" + suffix,
						description: fmt.Sprintf("This is the mean %s within the %s (tenth of the population).", wt, dec.Ordinal) + context,
						unit:        prices2017,
						bins:        dec.ScaleAvg,
						scheme:      "Greens",
						aggregable:  true,
					})
				}
				for _, dec := range d.lisDeciles10 {
					base = append(base, column{
						name:        common.Capitalize(dec.Ordinal) + " (LIS)",
						slug:        "share_" + dec.Notation + "_" + suffix,
						description: fmt.Sprintf("This is the %s of the %s (tenth of the population) as a share of total %s.", wt, dec.Ordinal, wt) + context,
						unit:        "%",
						bins:        dec.ScaleShare,
						scheme:      "OrRd",
					})
				}
				addAggregated(t, base, d.lisAggregations)
			}
		}
		t.SetFrom(start, "tableSlug", tab.Name)
	}
	return b.stamp(t, lisSource)
}
