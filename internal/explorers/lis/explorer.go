// Package lis builds the Luxembourg Income Study inequality explorer:
// welfare measures crossed with equivalence scales, an equivalization
// checkbox and before vs. after tax comparisons.
package lis

import (
	"strings"

	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

// Name is the file name of the generated explorer.
const Name = "lis-inequality"

// pickerSlugs are the columns offered in the table tab's picker.
var pickerSlugs = []string{
	"gini_mi_eq", "share_p100_mi_eq", "palma_ratio_mi_eq", "headcount_ratio_50_median_mi_eq",
	"gini_dhi_eq", "share_p100_dhi_eq", "palma_ratio_dhi_eq", "headcount_ratio_50_median_dhi_eq",
}

// Builder generates the LIS inequality explorer.
type Builder struct {
	params common.Params
}

// New returns a builder using p.
func New(p common.Params) *Builder {
	return &Builder{params: p}
}

func (b *Builder) Name() string { return Name }

func (b *Builder) Sheets() []sheet.Ref {
	return []sheet.Ref{welfareRef, equivalenceRef, tablesRef}
}

// Build expands the dimension sheets into the explorer.
func (b *Builder) Build(set sheet.Set) (*explorer.Explorer, error) {
	d, err := loadDimensions(set)
	if err != nil {
		return nil, err
	}

	e := explorer.New(Name)
	e.Header.
		Add("explorerTitle", "Inequality Data Explorer: Luxembourg Income Study data").
		Add("selection", "Chile", "Brazil", "South Africa", "United States", "France", "China").
		Add("explorerSubtitle", "").
		Add("isPublished", "true").
		Add("googleSheet", welfareRef.DocumentURL()).
		Add("wpBlockId", "").
		Add("entityType", "country or region").
		Add("pickerColumnSlugs", strings.Join(pickerSlugs, " "))

	e.Graphers = b.buildGraphers(d)

	tables := b.buildTables(d)
	for _, tab := range d.tables {
		columns := tables.Filter(func(r explorer.Row) bool {
			return r.Str("tableSlug") == tab.Name
		}).Drop("tableSlug")
		e.AddTable(tab.Link, tab.Name, columns)
	}
	return e, nil
}
