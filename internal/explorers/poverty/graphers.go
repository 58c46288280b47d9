package poverty

import (
	"fmt"
	"strings"

	"explorergen/domain/explorer"
)

const (
	breaksCheckbox = "Show breaks between less comparable surveys Checkbox"

	gapIndexSubtitle = "The poverty gap index is a poverty measure that reflects both the prevalence and the depth of poverty. It is calculated as the share of population in poverty multiplied by the average shortfall from the poverty line (expressed as a % of the poverty line)."
	pricesNote       = "This data is measured in international-$ at 2017 prices to account for inflation and differences in the cost of living between countries. It relates to disposable %s per capita."
)

type view struct {
	title, ySlugs, metric, povline, subtitle, note string
}

func (b *Builder) addView(g *explorer.Table, v view, s surveyType) {
	g.NewRow().
		Set("title", v.title).
		Set("ySlugs", v.ySlugs).
		Set("Metric Dropdown", v.metric).
		Set("Poverty line Dropdown", v.povline).
		Set("Household survey data type Dropdown", s.DropdownOption).
		Set("tableSlug", s.TableName).
		Set("subtitle", v.subtitle).
		Set("note", v.note).
		Set("sourceDesc", sourceName).
		Set("type", explorer.Empty).
		Set("yAxisMin", explorer.Float(0)).
		Set("facet", explorer.Empty).
		Set("selectedFacetStrategy", explorer.Empty).
		Set("hasMapTab", "true").
		Set("tab", "map").
		Set("mapTargetTime", b.params.MapTargetTime).
		Set("survey_type", s.TableName)
}

// buildGraphers emits the map views for every metric, line and survey type,
// then a faceted copy of each view showing survey spells.
func (b *Builder) buildGraphers(d *dimensions) *explorer.Table {
	g := explorer.NewTable()
	for _, s := range d.surveys {
		note := fmt.Sprintf(pricesNote, s.Text)
		for _, p := range d.abs {
			b.addView(g, view{
				title:    p.TitleShare,
				ySlugs:   "headcount_ratio_" + p.Cents,
				metric:   "Share in poverty",
				povline:  p.PovlineDropdown,
				subtitle: p.Subtitle,
				note:     fmt.Sprintf("This data is measured in international-$ at 2017 prices. Depending on the country and year, it relates to disposable %s per capita.", s.Text),
			}, s)
		}
		for _, p := range d.abs {
			b.addView(g, view{
				title:    p.TitleNumber,
				ySlugs:   "headcount_" + p.Cents,
				metric:   "Number in poverty",
				povline:  p.PovlineDropdown,
				subtitle: p.Subtitle,
				note:     fmt.Sprintf("This data is measured in international-$ at 2017 prices. Depending on the country and year, it relates to disposable %s per capita.", s.Text),
			}, s)
		}
		for _, p := range d.abs {
			b.addView(g, view{
				title:    p.TitleTotalShortfall,
				ySlugs:   "total_shortfall_" + p.Cents,
				metric:   "Total shortfall from poverty line",
				povline:  p.PovlineDropdown,
				subtitle: p.SubtitleTotalShortfall,
				note:     "This data is expressed in international-$ at 2017 prices. The cost of closing the poverty gap does not take into account costs and inefficiencies from making the necessary transfers.",
			}, s)
		}
		for _, p := range d.abs {
			b.addView(g, view{
				title:    p.TitleAvgShortfall,
				ySlugs:   "avg_shortfall_" + p.Cents,
				metric:   "Average shortfall ($ per day)",
				povline:  p.PovlineDropdown,
				subtitle: p.SubtitleAvgShortfall,
				note:     note,
			}, s)
		}
		for _, p := range d.abs {
			b.addView(g, view{
				title:    p.TitleIncomeGapRatio,
				ySlugs:   "income_gap_ratio_" + p.Cents,
				metric:   "Average shortfall (% of poverty line)",
				povline:  p.PovlineDropdown,
				subtitle: p.SubtitleIncomeGapRatio,
				note:     note,
			}, s)
		}
		for _, p := range d.abs {
			b.addView(g, view{
				title:    fmt.Sprintf("Poverty gap index at $%s a day", p.DollarsText),
				ySlugs:   "poverty_gap_index_" + p.Cents,
				metric:   "Poverty gap index",
				povline:  p.PovlineDropdown,
				subtitle: gapIndexSubtitle,
				note:     note,
			}, s)
		}

		relSubtitle := "Relative poverty is measured in terms of a poverty line that rises and falls over time with average incomes – in this case set at %s %s."
		relNote := fmt.Sprintf("Depending on the country and year, the data relates to disposable %s per capita.", s.Text)
		for _, r := range d.rel {
			b.addView(g, view{
				title:    r.TitleShare,
				ySlugs:   "headcount_ratio_" + r.SlugSuffix,
				metric:   "Share in poverty",
				povline:  r.Dropdown,
				subtitle: fmt.Sprintf(relSubtitle, r.Text, s.Text),
				note:     relNote,
			}, s)
		}
		for _, r := range d.rel {
			b.addView(g, view{
				title:    r.TitleNumber,
				ySlugs:   "headcount_" + r.SlugSuffix,
				metric:   "Number in poverty",
				povline:  r.Dropdown,
				subtitle: fmt.Sprintf(relSubtitle, r.Text, s.Text),
				note:     relNote,
			}, s)
		}
		for _, r := range d.rel {
			b.addView(g, view{
				title:    fmt.Sprintf("Total shortfall from a poverty line of %s %s", r.Text, s.Text),
				ySlugs:   "total_shortfall_" + r.SlugSuffix,
				metric:   "Total shortfall from poverty line",
				povline:  r.Dropdown,
				subtitle: fmt.Sprintf("This is the amount of money that would be theoretically needed to lift the incomes of all people in poverty up to %s %s. This data is adjusted for inflation and for differences in the cost of living between countries.", r.Text, s.Text),
				note:     note,
			}, s)
		}
		for _, r := range d.rel {
			b.addView(g, view{
				title:    fmt.Sprintf("Average shortfall from a poverty line of %s %s", r.Text, s.Text),
				ySlugs:   "avg_shortfall_" + r.SlugSuffix,
				metric:   "Average shortfall ($ per day)",
				povline:  r.Dropdown,
				subtitle: fmt.Sprintf("This is the amount of money that would be theoretically needed to lift the incomes of all people in poverty up to %s %s, averaged across the population in poverty.", r.Text, s.Text),
				note:     note,
			}, s)
		}
		for _, r := range d.rel {
			b.addView(g, view{
				title:    fmt.Sprintf("Average shortfall from a poverty line of %s %s (as a share of the poverty line)", r.Text, s.Text),
				ySlugs:   "income_gap_ratio_" + r.SlugSuffix,
				metric:   "Average shortfall (% of poverty line)",
				povline:  r.Dropdown,
				subtitle: fmt.Sprintf(`This is the average shortfall expressed as a share of the poverty line, sometimes called the "income gap ratio". It captures the depth of poverty in which those below %s %s a day are living.`, r.Text, s.Text),
				note:     note,
			}, s)
		}
		for _, r := range d.rel {
			b.addView(g, view{
				title:    fmt.Sprintf("Poverty gap index at %s %s", r.Text, s.Text),
				ySlugs:   "poverty_gap_index_" + r.SlugSuffix,
				metric:   "Poverty gap index",
				povline:  r.Dropdown,
				subtitle: gapIndexSubtitle,
				note:     note,
			}, s)
		}
	}
	g.SetAll(breaksCheckbox, "false")

	spellSlugs := strings.Join(b.params.SpellSlugs(), " ")
	spells := explorer.NewTable()
	for i := 0; i < g.Len(); i++ {
		v := g.Row(i)
		spells.NewRow().
			Set("title", v.Get("title")).
			Set("ySlugs", spellSlugs).
			Set("Metric Dropdown", v.Get("Metric Dropdown")).
			Set("Poverty line Dropdown", v.Get("Poverty line Dropdown")).
			Set("Household survey data type Dropdown", v.Get("Household survey data type Dropdown")).
			Set("tableSlug", v.Str("survey_type")+"_"+v.Str("ySlugs")).
			Set("subtitle", v.Get("subtitle")).
			Set("note", v.Get("note")).
			Set("sourceDesc", v.Get("sourceDesc")).
			Set("type", v.Get("type")).
			Set("yAxisMin", v.Get("yAxisMin")).
			Set("facet", "entity").
			Set("selectedFacetStrategy", "entity").
			Set("hasMapTab", "false").
			Set("tab", explorer.Empty).
			Set("mapTargetTime", explorer.Empty).
			Set(breaksCheckbox, "true")
	}
	g.Append(spells)

	g.SetAll("relatedQuestionText", explorer.Empty)
	g.SetAll("relatedQuestionUrl", explorer.Empty)
	g.SetWhere(func(r explorer.Row) bool {
		return r.Str("ySlugs") == "headcount_ratio_215" &&
			r.Str("tableSlug") == "inc_or_cons" &&
			r.Str(breaksCheckbox) == "false"
	}, "defaultView", "true")
	return g
}
