package inequality

import (
	"fmt"
	"strings"

	"explorergen/domain/explorer"
	"explorergen/internal/explorers/common"
)

const (
	lisSourceDropdown = "Luxembourg Income Study (LIS)"
	widSourceDropdown = "World Inequality Database (WID)"
)

// dropdown is the source dropdown option of tab, falling back to def when
// the tables sheet leaves it blank.
func (tab sourceTable) dropdown(def string) string {
	if strings.TrimSpace(tab.SourceName) == "" {
		return def
	}
	return tab.SourceName
}

// metric is a grapher view family shared by LIS and WID. title and subtitle
// receive the welfare type, such as "income".
type metric struct {
	slug     string
	dropdown string
	title    func(w string) string
	subtitle func(w string) string
}

func inequalityOf(name string) func(string) string {
	return func(w string) string { return common.Capitalize(w) + " inequality: " + name }
}

var (
	gini = metric{
		slug:     "gini",
		dropdown: "Gini coefficient",
		title:    inequalityOf("Gini coefficient"),
		subtitle: func(w string) string {
			return fmt.Sprintf("The Gini coefficient is a measure of the inequality of the %s distribution in a population. Higher values indicate a higher level of inequality.", w)
		},
	}
	p90p10 = metric{
		slug:     "p90_p10_ratio",
		dropdown: "P90/P10",
		title:    inequalityOf("P90/P10 ratio"),
		subtitle: func(w string) string {
			return fmt.Sprintf("P90 and P10 are the levels of %s below which 90%% and 10%% of the population live, respectively. This variable gives the ratio of the two. It is a measure of inequality that indicates the gap between the richest and poorest tenth of the population.", w)
		},
	}
	p90p50 = metric{
		slug:     "p90_p50_ratio",
		dropdown: "P90/P50",
		title:    inequalityOf("P90/P50 ratio"),
		subtitle: func(w string) string {
			return fmt.Sprintf("The P90/P50 ratio measures the degree of inequality within the richest half of the population. A ratio of 2 means that someone just falling in the richest tenth of the population has twice the median %s.", w)
		},
	}
	p50p10 = metric{
		slug:     "p50_p10_ratio",
		dropdown: "P50/P10",
		title:    inequalityOf("P50/P10 ratio"),
		subtitle: func(w string) string {
			return fmt.Sprintf("The P50/P10 ratio measures the degree of inequality within the poorest half of the population. A ratio of 2 means that the median %s is two times higher than that of someone just falling in the poorest tenth of the population.", w)
		},
	}
	palma = metric{
		slug:     "palma_ratio",
		dropdown: "Palma ratio",
		title:    inequalityOf("Palma ratio"),
		subtitle: func(w string) string {
			return fmt.Sprintf("The Palma ratio is the share of total %s of the top 10%% divided by the share of the bottom 40%%.", w)
		},
	}
)

func topShare(slug, group string) metric {
	return metric{
		slug:     slug,
		dropdown: "Top " + group + " share",
		title:    func(w string) string { return common.Capitalize(w) + " share of the top " + group },
		subtitle: func(w string) string { return topShareDescription(w, group) },
	}
}

var (
	lisMetrics = []metric{
		gini,
		topShare("share_p90", "10%"),
		{
			slug:     "share_bottom50",
			dropdown: "Bottom 50% share",
			title:    func(w string) string { return common.Capitalize(w) + " share of the bottom 50%" },
			subtitle: func(w string) string {
				return fmt.Sprintf("This is the %s of the poorest 50%% as a share of total %s.", w, w)
			},
		},
		p90p10, p90p50, p50p10, palma,
		{
			slug:     "headcount_ratio_50_median",
			dropdown: "Share in relative poverty (< 50% of the median)",
			title:    func(string) string { return "Relative poverty: Share of people below 50% of the median income" },
			subtitle: func(w string) string {
				return fmt.Sprintf("Relative poverty is measured in terms of a poverty line that rises and falls over time with average incomes – in this case set at 50%% of the median %s.", w)
			},
		},
	}
	widMetrics = []metric{
		{slug: "p0p100_gini", dropdown: gini.dropdown, title: gini.title, subtitle: gini.subtitle},
		topShare("p90p100_share", "10%"),
		topShare("p99p100_share", "1%"),
		topShare("p99_9p100_share", "0.1%"),
		topShare("p99_99p100_share", "0.01%"),
		topShare("p99_999p100_share", "0.001%"),
		p90p10, p90p50, p50p10, palma,
	}
)

func (b *Builder) buildLISGraphers(d *dimensions) *explorer.Table {
	g := explorer.NewTable()
	for _, tab := range d.lisTables {
		start := g.Len()
		for _, w := range d.lisWelfare {
			for _, eq := range d.scales {
				label := fmt.Sprintf("(%s, %s)", common.Capitalize(w.Title), eq.Text)
				for _, m := range lisMetrics {
					g.NewRow().
						Set("title", m.title(w.WelfareType)+" "+label).
						Set("ySlugs", m.slug+"_"+w.Slug+"_"+eq.Slug).
						Set("Source Dropdown", tab.dropdown(lisSourceDropdown)).
						Set("Metric Dropdown", m.dropdown).
						Set("Welfare type Dropdown", fmt.Sprintf("%s (%s)", w.DropdownOption, eq.Text)).
						Set("subtitle", m.subtitle(w.WelfareType)+" "+w.Subtitle).
						Set("note", explorer.Empty).
						Set("selectedFacetStrategy", explorer.Empty).
						Set("hasMapTab", "true").
						Set("tab", "map").
						Set("type", explorer.Empty)
				}
			}
		}
		g.SetFrom(start, "tableSlug", tab.Name)
	}
	g.SetAll("yAxisMin", 0)
	g.SetAll("mapTargetTime", b.params.MapTargetTime)
	return g
}

func (b *Builder) buildWIDGraphers(d *dimensions) *explorer.Table {
	g := explorer.NewTable()
	for _, tab := range d.widTables {
		start := g.Len()
		source := tab.dropdown(widSourceDropdown)
		for _, w := range d.widWelfare {
			for _, m := range widMetrics {
				g.NewRow().
					Set("title", m.title(w.WelfareType)+" "+common.Capitalize(w.Title)).
					Set("ySlugs", m.slug+"_"+w.Slug).
					Set("Source Dropdown", source).
					Set("Metric Dropdown", m.dropdown).
					Set("Welfare type Dropdown", w.DropdownOption).
					Set("subtitle", m.subtitle(w.WelfareType)+" "+w.Subtitle).
					Set("note", w.Note).
					Set("type", explorer.Empty).
					Set("selectedFacetStrategy", explorer.Empty).
					Set("hasMapTab", "true").
					Set("tab", "map")
			}
		}
		g.SetFrom(start, "tableSlug", tab.Name)
	}
	g.SetAll("yAxisMin", 0)
	g.SetAll("mapTargetTime", b.params.MapTargetTime)
	return g
}
