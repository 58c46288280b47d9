package ppp

import (
	"fmt"

	"explorergen/domain/explorer"
)

const (
	sourceName         = "World Bank Poverty and Inequality Platform"
	sourceLink         = "https://pip.worldbank.org/"
	publishedBy        = "World Bank Poverty and Inequality Platform (PIP)"
	publishedByAdapted = "World Bank Poverty and Inequality Platform (PIP), adapted by Our World in Data."

	largeBins = "100000;300000;1000000;3000000;10000000;30000000;100000000;300000000;1000000000;1000000001"
)

type column struct {
	name, slug, description, publishedBy string
	unit, shortUnit, bins, scheme        string
}

func (b *Builder) addColumn(t *explorer.Table, c column, s surveyType) {
	t.NewRow().
		Set("name", c.name).
		Set("slug", c.slug).
		Set("sourceName", sourceName).
		Set("description", c.description).
		Set("sourceLink", sourceLink).
		Set("dataPublishedBy", c.publishedBy).
		Set("unit", c.unit).
		Set("shortUnit", c.shortUnit).
		Set("tolerance", b.params.Tolerance).
		Set("type", "Numeric").
		Set("colorScaleNumericMinValue", explorer.Float(0)).
		Set("colorScaleNumericBins", c.bins).
		Set("colorScaleEqualSizeBins", "true").
		Set("colorScaleScheme", c.scheme).
		Set("survey_type", s.TableName)
}

// distribution describes a mean, median or threshold column, priced in
// each PPP round.
type distribution struct {
	slug   string
	name   func(s surveyType) string
	desc   func(s surveyType) string
	bins   string
	scheme string
}

var distributions = []distribution{
	{
		slug:   "mean",
		name:   func(s surveyType) string { return "Mean " + s.Text + " per day" },
		desc:   func(s surveyType) string { return "The mean level of " + s.Text + " per day" },
		bins:   "1;2;5;10;20;50;50.0001",
		scheme: "BuGn",
	},
	{
		slug:   "median",
		name:   func(s surveyType) string { return "Median " + s.Text + " per day" },
		desc:   func(s surveyType) string { return "The level of " + s.Text + " per day below which half of the population live" },
		bins:   "1;2;5;10;20;50;50.0001",
		scheme: "BuGn",
	},
	{
		slug:   "decile1_thr",
		name:   func(surveyType) string { return "P10" },
		desc:   func(s surveyType) string { return "The level of " + s.Text + " per day below which 10% of the population falls" },
		bins:   "1;2;5;10;20;20.0001",
		scheme: "Greens",
	},
	{
		slug:   "decile9_thr",
		name:   func(surveyType) string { return "P90" },
		desc:   func(s surveyType) string { return "The level of " + s.Text + " per day above which 10% of the population falls" },
		bins:   "5;10;20;50;100;100.0001",
		scheme: "Blues",
	},
}

func (b *Builder) buildTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, s := range d.surveys {
		for _, r := range d.rounds {
			for _, p := range r.lines {
				b.addColumn(t, column{
					name:        fmt.Sprintf("Share of population below $%s a day (%s prices)", p.DollarsText, r.year),
					slug:        fmt.Sprintf("headcount_ratio_%s_ppp%s", p.Cents, r.year),
					description: fmt.Sprintf("%% of population living in households with an %s per person below $%s a day (%s prices).", s.Text, p.DollarsText, r.year),
					publishedBy: publishedBy,
					unit:        "%",
					shortUnit:   "%",
					bins:        "3;10;20;30;40;50;60;70;80;90;100",
					scheme:      "OrRd",
				}, s)
			}
		}
		for _, r := range d.rounds {
			for _, p := range r.lines {
				b.addColumn(t, column{
					name:        fmt.Sprintf("Number of people below $%s a day (%s prices)", p.DollarsText, r.year),
					slug:        fmt.Sprintf("headcount_%s_ppp%s", p.Cents, r.year),
					description: fmt.Sprintf("Number of people living in households with an %s per person below $%s a day (%s prices).", s.Text, p.DollarsText, r.year),
					publishedBy: publishedBy,
					bins:        largeBins,
					scheme:      "Reds",
				}, s)
			}
		}
		for _, r := range d.rounds {
			for _, rel := range d.rel {
				b.addColumn(t, column{
					name:        fmt.Sprintf("%s of median - share of population below poverty line (%s prices)", rel.Percent, r.year),
					slug:        fmt.Sprintf("headcount_ratio_%s_ppp%s", rel.SlugSuffix, r.year),
					description: fmt.Sprintf("%% of population living in households with an %s per person below %s of the median (%s prices).", s.Text, rel.Percent, r.year),
					publishedBy: publishedByAdapted,
					unit:        "%",
					shortUnit:   "%",
					bins:        "5;10;15;20;25;30;30.0001",
					scheme:      "YlOrBr",
				}, s)
			}
		}
		for _, r := range d.rounds {
			for _, rel := range d.rel {
				b.addColumn(t, column{
					name:        fmt.Sprintf("%s of median - total number of people below poverty line (%s prices)", rel.Percent, r.year),
					slug:        fmt.Sprintf("headcount_%s_ppp%s", rel.SlugSuffix, r.year),
					description: fmt.Sprintf("Number of people living in households with an %s per person below %s of the median (%s prices).", s.Text, rel.Percent, r.year),
					publishedBy: publishedByAdapted,
					bins:        largeBins,
					scheme:      "YlOrRd",
				}, s)
			}
		}
		for _, dist := range distributions {
			for _, r := range d.rounds {
				b.addColumn(t, column{
					name:        fmt.Sprintf("%s (%s prices)", dist.name(s), r.year),
					slug:        fmt.Sprintf("%s_ppp%s", dist.slug, r.year),
					description: fmt.Sprintf("%s (%s prices).", dist.desc(s), r.year),
					publishedBy: publishedBy,
					unit:        fmt.Sprintf("international-$ at %s prices", r.year),
					shortUnit:   "$",
					bins:        dist.bins,
					scheme:      dist.scheme,
				}, s)
			}
		}
	}
	return t
}
