package lis

import (
	"fmt"

	"explorergen/domain/explorer"
	"explorergen/internal/explorers/common"
)

const (
	indicatorDropdown = "Indicator Dropdown"
	incomeDropdown    = "Income measure Dropdown"
	equivalizeBox     = "Adjust for cost sharing within households (equivalized income) Checkbox"

	// Welfare slugs paired by the comparison views.
	beforeTax = "mi"
	afterTax  = "dhi"
)

type metric struct {
	slug     string
	dropdown string
	title    func(w welfare) string
	subtitle func(w welfare) string
	// compareTitle and compareSubtitle head the before vs. after tax view.
	compareTitle    string
	compareSubtitle string
}

var metrics = []metric{
	{
		slug:            "gini",
		dropdown:        "Gini coefficient",
		title:           func(w welfare) string { return fmt.Sprintf("Gini coefficient (%s)", w.Title) },
		subtitle:        func(w welfare) string { return giniDefinition + " " + w.SubtitleIneq },
		compareTitle:    "Gini coefficient",
		compareSubtitle: giniDefinition,
	},
	{
		slug:     "share_p100",
		dropdown: "Share of the richest 10%",
		title: func(w welfare) string {
			return fmt.Sprintf("%s share of the richest 10%% (%s)", common.Capitalize(w.WelfareType), w.Title)
		},
		subtitle:        func(w welfare) string { return topShareDefinition(w.WelfareType) + " " + w.Subtitle },
		compareTitle:    "Income share of the richest 10%",
		compareSubtitle: topShareDefinition("income"),
	},
	{
		slug:     "share_bottom50",
		dropdown: "Share of the poorest 50%",
		title: func(w welfare) string {
			return fmt.Sprintf("%s share of the poorest 50%% (%s)", common.Capitalize(w.WelfareType), w.Title)
		},
		subtitle:        func(w welfare) string { return bottomShareDefinition(w.WelfareType) + " " + w.Subtitle },
		compareTitle:    "Income share of the poorest 50%",
		compareSubtitle: bottomShareDefinition("income"),
	},
	{
		slug:            "palma_ratio",
		dropdown:        "Palma ratio",
		title:           func(w welfare) string { return fmt.Sprintf("Palma ratio (%s)", w.Title) },
		subtitle:        func(w welfare) string { return palmaDefinition + " " + w.SubtitleIneq },
		compareTitle:    "Palma ratio",
		compareSubtitle: palmaDefinition,
	},
	{
		slug:            "headcount_ratio_50_median",
		dropdown:        "Share in relative poverty",
		title:           func(w welfare) string { return fmt.Sprintf("Share of people in relative poverty (%s)", w.Title) },
		subtitle:        func(w welfare) string { return relativePovertyDefinition(w.WelfareType) + " " + w.Subtitle },
		compareTitle:    "Share of people in relative poverty",
		compareSubtitle: relativePovertyDefinition("income"),
	},
}

func (b *Builder) buildGraphers(d *dimensions) *explorer.Table {
	g := explorer.NewTable()
	for _, tab := range d.tables {
		start := g.Len()
		for _, eq := range d.scales {
			for _, w := range d.welfare {
				for _, m := range metrics {
					g.NewRow().
						Set("title", m.title(w)).
						Set("ySlugs", m.slug+"_"+w.Slug+"_"+eq.Slug).
						Set(indicatorDropdown, m.dropdown).
						Set(incomeDropdown, w.DropdownOption).
						Set(equivalizeBox, eq.Checkbox).
						Set("subtitle", m.subtitle(w)).
						Set("note", eq.Note).
						Set("selectedFacetStrategy", explorer.Empty).
						Set("hasMapTab", "true").
						Set("tab", "map").
						Set("type", explorer.Empty)
				}
			}

			for _, m := range metrics {
				g.NewRow().
					Set("title", m.compareTitle+" (after tax vs. before tax)").
					Set("ySlugs", m.slug+"_"+beforeTax+"_"+eq.Slug+" "+m.slug+"_"+afterTax+"_"+eq.Slug).
					Set(indicatorDropdown, m.dropdown).
					Set(incomeDropdown, "After tax vs. before tax").
					Set(equivalizeBox, eq.Checkbox).
					Set("subtitle", m.compareSubtitle).
					Set("note", eq.Note).
					Set("selectedFacetStrategy", "entity").
					Set("hasMapTab", "false").
					Set("tab", "chart")
			}
		}
		g.SetFrom(start, "tableSlug", tab.Name)
	}
	g.SetAll("relatedQuestionText", explorer.Empty)
	g.SetAll("relatedQuestionUrl", explorer.Empty)
	g.SetAll("yAxisMin", 0)
	g.SetAll("mapTargetTime", b.params.MapTargetTime)
	g.SetWhere(func(r explorer.Row) bool {
		return r.Str(indicatorDropdown) == "Gini coefficient" &&
			r.Str(incomeDropdown) == "After tax" &&
			r.Str(equivalizeBox) == "false"
	}, "defaultView", "true")
	return g
}
