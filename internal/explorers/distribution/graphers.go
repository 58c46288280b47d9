package distribution

import (
	"fmt"
	"strings"

	"explorergen/domain/explorer"
	"explorergen/internal/explorers/common"
)

const (
	adjustedSubtitle = "This data is adjusted for inflation and for differences in the cost of living between countries."
	pricesNote       = "This data is measured in international-$ at 2017 prices."
	pricesNoteLong   = "This data is measured in international-$ at 2017 prices to account for inflation and differences in the cost of living between countries."
)

const (
	metricMean      = "Mean income or consumption"
	metricDecileAvg = "Mean income or consumption, by decile"
	metricMedian    = "Median income or consumption"
	metricThreshold = "Decile thresholds"
	metricShare     = "Decile shares"
)

// Dropdown orders. Values missing from a list sort after it.
var (
	decileOrder = []string{"", "1 (poorest)", "2", "3", "4", "5", "5 (median)", "6", "7", "8", "9", "9 (richest)", "10 (richest)", "All deciles"}
	metricOrder = []string{metricMean, metricDecileAvg, metricMedian, metricThreshold, metricShare}
)

// view is one grapher row before the shared columns are stamped on.
type view struct {
	title     string
	ySlugs    string
	metric    string
	decile    string
	aggregate string
	subtitle  string
	note      string
	toggle    bool
}

func addView(g *explorer.Table, v view, s sourceView) {
	r := g.NewRow().
		Set("title", v.title).
		Set("ySlugs", strings.TrimSpace(v.ySlugs)).
		Set("Income type Dropdown", common.Capitalize(s.TypeTitle)).
		Set("Metric Dropdown", v.metric).
		Set("Decile Dropdown", v.decile).
		Set("Aggregation Radio", v.aggregate).
		Set("PIP Checkbox", s.PIP).
		Set("WID Checkbox", s.WID).
		Set("LIS Checkbox", s.LIS).
		Set("subtitle", v.subtitle).
		Set("note", v.note)
	if v.toggle {
		r.Set("yScaleToggle", "true")
	} else {
		r.Set("yScaleToggle", explorer.Empty)
	}
}

// fill substitutes the aggregation suffix and the per-source decile
// notations into a slug template.
func fill(template string, agg aggregation, key string, dec decile) string {
	pairs := []string{"{agg}", agg.SlugSuffix}
	if key != "" {
		pairs = append(pairs,
			"{"+key+"_pip}", dec.Decile,
			"{"+key+"_wid}", dec.WIDNotation,
			"{"+key+"_lis}", dec.LISNotation)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// buildGraphers emits, per merged table and checkbox combination, the mean,
// median, threshold and decile average views for every LIS income
// aggregation, followed by the decile share views.
func (b *Builder) buildGraphers(d *dimensions) *explorer.Table {
	g := explorer.NewTable()
	for _, tab := range d.links {
		start := g.Len()
		for _, s := range d.views {
			tt := s.TypeTitle
			for _, agg := range d.lisAggregations {
				per := agg.Aggregation
				radio := common.Capitalize(per)

				addView(g, view{
					title:     fmt.Sprintf("Mean income per %s (%s)", per, tt),
					ySlugs:    fill(s.Mean, agg, "", decile{}),
					metric:    metricMean,
					aggregate: radio,
					subtitle:  adjustedSubtitle,
					note:      pricesNote,
					toggle:    true,
				}, s)
				addView(g, view{
					title:     fmt.Sprintf("Median income per %s (%s)", per, tt),
					ySlugs:    fill(s.Median, agg, "", decile{}),
					metric:    metricMedian,
					aggregate: radio,
					subtitle:  adjustedSubtitle,
					note:      pricesNote,
					toggle:    true,
				}, s)
				for _, dec := range d.deciles9 {
					addView(g, view{
						title:     fmt.Sprintf("Threshold income marking the %s (%s)", dec.Ordinal, tt),
						ySlugs:    fill(s.Threshold, agg, "dec9", dec),
						metric:    metricThreshold,
						decile:    dec.Dropdown,
						aggregate: radio,
						subtitle:  fmt.Sprintf("This is the level of income below which %s0%% of the population falls.", dec.Decile),
						note:      pricesNoteLong,
						toggle:    true,
					}, s)
				}
				for _, dec := range d.deciles10 {
					addView(g, view{
						title:     fmt.Sprintf("Mean income within the %s (%s)", dec.Ordinal, tt),
						ySlugs:    fill(s.Average, agg, "dec10", dec),
						metric:    metricDecileAvg,
						decile:    dec.Dropdown,
						aggregate: radio,
						subtitle:  fmt.Sprintf("This is the mean income within the %s (tenth of the population).", dec.Ordinal),
						note:      pricesNoteLong,
						toggle:    true,
					}, s)
				}
			}

			for _, dec := range d.deciles10 {
				addView(g, view{
					title:    fmt.Sprintf("Income share of the %s (%s)", dec.Ordinal, tt),
					ySlugs:   fill(s.Share, aggregation{}, "dec10", dec),
					metric:   metricShare,
					decile:   dec.Dropdown,
					subtitle: fmt.Sprintf("This is the income of the %s (tenth of the population) as a share of total income.", dec.Ordinal),
				}, s)
			}
		}
		g.SetFrom(start, "tableSlug", tab.Name)
	}

	g.SetAll("yAxisMin", 0)
	g.SetAll("mapTargetTime", b.params.MapTargetTime)
	g.SetAll("selectedFacetStrategy", "entity")
	g.SetAll("hasMapTab", "false")
	g.SetAll("tab", "chart")

	// A view without slugs breaks the checkbox switching.
	g = g.Filter(func(r explorer.Row) bool { return r.Str("ySlugs") != "" })

	g.SetAll("relatedQuestionText", explorer.Empty)
	g.SetAll("relatedQuestionUrl", explorer.Empty)
	g.SetWhere(func(r explorer.Row) bool {
		return r.Str("Income type Dropdown") == "After tax" &&
			r.Str("Metric Dropdown") == metricMean &&
			r.Str("Aggregation Radio") == "Year" &&
			r.Str("PIP Checkbox") == "true" &&
			r.Str("WID Checkbox") == "true" &&
			r.Str("LIS Checkbox") == "true"
	}, "defaultView", "true")

	decileRank := rankOf(decileOrder)
	metricRank := rankOf(metricOrder)
	g.SortStable(func(a, b explorer.Row) bool {
		da, db := decileRank(a.Str("Decile Dropdown")), decileRank(b.Str("Decile Dropdown"))
		if da != db {
			return da < db
		}
		return metricRank(a.Str("Metric Dropdown")) < metricRank(b.Str("Metric Dropdown"))
	})
	return g
}

func rankOf(order []string) func(string) int {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	return func(v string) int {
		if i, ok := rank[v]; ok {
			return i
		}
		return len(order)
	}
}
