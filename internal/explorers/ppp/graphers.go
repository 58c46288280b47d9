package ppp

import (
	"fmt"

	"explorergen/domain/explorer"
)

const (
	compareDropdown = "Compare 2017 and 2011 prices"
	adjustedText    = "This data is adjusted for inflation and for differences in the cost of living between countries."

	relatedQuestionText = "From $1.90 to $2.15 a day: the updated International Poverty Line"
	relatedQuestionURL  = "https://ourworldindata.org/from-1-90-to-2-15-a-day-the-updated-international-poverty-line"

	defaultSlugs = "headcount_ratio_190_ppp2011 headcount_ratio_215_ppp2017"
)

// povlineOrder is the order of the poverty line dropdown. Views without a
// listed line go last.
var povlineOrder = []string{
	"$1.90 per day: International Poverty Line",
	"$2.15 per day: International Poverty Line",
	"$3.20 per day: Lower-middle income poverty line",
	"$3.65 per day: Lower-middle income poverty line",
	"$5.50 per day: Upper-middle income poverty line",
	"$6.85 per day: Upper-middle income poverty line",
	"$1 per day",
	"$10 per day",
	"$20 per day",
	"$30 per day",
	"$40 per day",
	"International Poverty Line",
	"Lower-middle income poverty line",
	"Upper-middle income poverty line",
	"Relative poverty: 40% of median",
	"Relative poverty: 50% of median",
	"Relative poverty: 60% of median",
}

type view struct {
	title, ySlugs, metric, prices, povline, subtitle, note string

	// compare views facet by entity and have no map.
	compare bool
	toggle  bool
}

func (b *Builder) addView(g *explorer.Table, v view, s surveyType) {
	row := g.NewRow().
		Set("title", v.title).
		Set("ySlugs", v.ySlugs).
		Set("Metric Dropdown", v.metric).
		Set("International-$ Dropdown", v.prices).
		Set("Poverty line Dropdown", v.povline).
		Set("Household survey data type Dropdown", s.DropdownOption).
		Set("tableSlug", s.TableName).
		Set("subtitle", v.subtitle).
		Set("note", v.note).
		Set("sourceDesc", sourceName).
		Set("type", explorer.Empty).
		Set("yAxisMin", explorer.Float(0))
	if v.compare {
		row.Set("facet", "entity").
			Set("selectedFacetStrategy", "entity").
			Set("hasMapTab", explorer.Empty).
			Set("tab", explorer.Empty).
			Set("mapTargetTime", explorer.Empty)
	} else {
		row.Set("facet", explorer.Empty).
			Set("selectedFacetStrategy", explorer.Empty).
			Set("hasMapTab", "true").
			Set("tab", "map").
			Set("mapTargetTime", b.params.MapTargetTime)
	}
	if v.toggle {
		row.Set("yScaleToggle", "true")
	}
	row.Set("survey_type", s.TableName)
}

func measured(year string, s surveyType) string {
	return fmt.Sprintf("This data is measured in international-$ at %s prices. It relates to disposable %s per capita (exact definitions vary).", year, s.Text)
}

func measuredLong(year string, s surveyType) string {
	return fmt.Sprintf("This data is measured in international-$ at %s prices to account for inflation and differences in the cost of living between countries. It relates to disposable %s per capita (exact definitions vary).", year, s.Text)
}

func relates(s surveyType) string {
	return fmt.Sprintf("This data relates to disposable %s per capita (exact definitions vary).", s.Text)
}

func (b *Builder) buildGraphers(d *dimensions) *explorer.Table {
	g := explorer.NewTable()
	for _, s := range d.surveys {
		for _, r := range d.rounds {
			for _, p := range r.lines {
				b.addView(g, view{
					title:    p.TitleShare,
					ySlugs:   fmt.Sprintf("headcount_ratio_%s_ppp%s", p.Cents, r.year),
					metric:   "Share in poverty",
					prices:   r.year + " prices",
					povline:  p.PovlineDropdown,
					subtitle: p.Subtitle,
					note:     measured(r.year, s),
				}, s)
			}
		}
		for _, r := range d.rounds {
			for _, p := range r.lines {
				b.addView(g, view{
					title:    p.TitleNumber,
					ySlugs:   fmt.Sprintf("headcount_%s_ppp%s", p.Cents, r.year),
					metric:   "Number in poverty",
					prices:   r.year + " prices",
					povline:  p.PovlineDropdown,
					subtitle: p.Subtitle,
					note:     measured(r.year, s),
				}, s)
			}
		}
		for _, p := range d.both {
			b.addView(g, view{
				title:    p.TitleShare,
				ySlugs:   fmt.Sprintf("headcount_ratio_%s_ppp2011 headcount_ratio_%s_ppp2017", p.Cents2011, p.Cents2017),
				metric:   "Share in poverty",
				prices:   compareDropdown,
				povline:  p.PovlineDropdown,
				subtitle: p.Subtitle,
				note:     relates(s),
				compare:  true,
			}, s)
		}
		for _, p := range d.both {
			b.addView(g, view{
				title:    p.TitleNumber,
				ySlugs:   fmt.Sprintf("headcount_%s_ppp2011 headcount_%s_ppp2017", p.Cents2011, p.Cents2017),
				metric:   "Number in poverty",
				prices:   compareDropdown,
				povline:  p.PovlineDropdown,
				subtitle: p.Subtitle,
				note:     relates(s),
				compare:  true,
			}, s)
		}

		for _, r := range d.rounds {
			for _, rel := range d.rel {
				b.addView(g, view{
					title:    fmt.Sprintf("%s (%s prices)", rel.TitleShare, r.year),
					ySlugs:   fmt.Sprintf("headcount_ratio_%s_ppp%s", rel.SlugSuffix, r.year),
					metric:   "Share in poverty",
					prices:   r.year + " prices",
					povline:  rel.Dropdown,
					subtitle: relativeSubtitle(rel.Text, s),
					note:     measuredLong(r.year, s),
				}, s)
			}
		}
		for _, r := range d.rounds {
			for _, rel := range d.rel {
				b.addView(g, view{
					title:    fmt.Sprintf("%s (%s prices)", rel.TitleNumber, r.year),
					ySlugs:   fmt.Sprintf("headcount_%s_ppp%s", rel.SlugSuffix, r.year),
					metric:   "Number in poverty",
					prices:   r.year + " prices",
					povline:  rel.Dropdown,
					subtitle: relativeSubtitle(rel.Text, s),
					note:     measuredLong(r.year, s),
				}, s)
			}
		}
		b.addView(g, view{
			title:    "Relative poverty: Share of people below 60% of the median (2011 vs. 2017 prices)",
			ySlugs:   "headcount_ratio_60_median_ppp2011 headcount_ratio_60_median_ppp2017",
			metric:   "Share in poverty",
			prices:   compareDropdown,
			povline:  "Relative poverty: 60% of median",
			subtitle: relativeSubtitle("60% of the median", s),
			note:     adjustedText + fmt.Sprintf(" It relates to disposable %s per capita (exact definitions vary).", s.Text),
			compare:  true,
		}, s)
		b.addView(g, view{
			title:    "Relative poverty: Number of people below 60% of the median (2011 vs. 2017 prices)",
			ySlugs:   "headcount_60_median_ppp2011 headcount_60_median_ppp2017",
			metric:   "Number in poverty",
			prices:   compareDropdown,
			povline:  "Relative poverty: 60% of median",
			subtitle: relativeSubtitle("60% of the median", s),
			note:     adjustedText + fmt.Sprintf(" It relates to disposable %s per capita (exact definitions vary).", s.Text),
			compare:  true,
		}, s)

		b.addDistributionViews(g, s, "mean", "Mean income or expenditure",
			"Mean "+s.Text+" per day", "Mean "+s.Text+" per day: 2011 vs. 2017 prices",
			adjustedText, false)
		b.addDistributionViews(g, s, "median", "Median income or expenditure",
			"Median "+s.Text+" per day", "Median "+s.Text+" per day: 2011 vs. 2017 prices",
			adjustedText, false)
		b.addDistributionViews(g, s, "decile1_thr", "P10 (poorest tenth)",
			"P10: The "+s.Text+" of the poorest tenth", "P10: The "+s.Text+" of the poorest tenth (2011 vs. 2017 prices)",
			fmt.Sprintf("P10 is the level of %s per day below which 10%% of the population falls.", s.Text), true)
		b.addDistributionViews(g, s, "decile9_thr", "P90 (richest tenth)",
			"P90: The "+s.Text+" of the richest tenth", "P90: The "+s.Text+" of the richest tenth (2011 vs. 2017 prices)",
			fmt.Sprintf("P90 is the level of %s per day above which 10%% of the population falls.", s.Text), true)
	}

	g.SetAll("relatedQuestionText", relatedQuestionText)
	g.SetAll("relatedQuestionUrl", relatedQuestionURL)
	g.SetWhere(func(r explorer.Row) bool {
		return r.Str("ySlugs") == defaultSlugs && r.Str("tableSlug") == "inc_or_cons"
	}, "defaultView", "true")

	rank := make(map[string]int, len(povlineOrder))
	for i, p := range povlineOrder {
		rank[p] = i
	}
	position := func(r explorer.Row) int {
		if i, ok := rank[r.Str("Poverty line Dropdown")]; ok {
			return i
		}
		return len(povlineOrder)
	}
	g.SortStable(func(a, b explorer.Row) bool { return position(a) < position(b) })
	return g
}

// addDistributionViews emits one view per PPP round and a comparison view.
// Threshold views use the long note on single-round views and the
// inflation note on the comparison.
func (b *Builder) addDistributionViews(g *explorer.Table, s surveyType, slug, metric, title, compareTitle, subtitle string, threshold bool) {
	for _, year := range []string{"2011", "2017"} {
		note := measured(year, s)
		if threshold {
			note = measuredLong(year, s)
		}
		b.addView(g, view{
			title:    fmt.Sprintf("%s (%s prices)", title, year),
			ySlugs:   fmt.Sprintf("%s_ppp%s", slug, year),
			metric:   metric,
			prices:   year + " prices",
			subtitle: subtitle,
			note:     note,
			toggle:   true,
		}, s)
	}
	note := relates(s)
	if threshold {
		note = adjustedText + fmt.Sprintf(" It relates to disposable %s per capita (exact definitions vary).", s.Text)
	}
	b.addView(g, view{
		title:    compareTitle,
		ySlugs:   fmt.Sprintf("%s_ppp2011 %s_ppp2017", slug, slug),
		metric:   metric,
		prices:   compareDropdown,
		subtitle: subtitle,
		note:     note,
		compare:  true,
		toggle:   true,
	}, s)
}

func relativeSubtitle(text string, s surveyType) string {
	return fmt.Sprintf("Relative poverty is measured in terms of a poverty line that rises and falls over time with average incomes – in this case set at %s %s.", text, s.Text)
}
