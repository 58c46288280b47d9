// Package inequality builds the source-switching inequality explorer. It
// lays Luxembourg Income Study metrics, crossed with equivalence scales,
// next to World Inequality Database metrics, and lets readers pick the
// source from a dropdown.
package inequality

import (
	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/errors"
	"explorergen/internal/explorers/common"
)

// Name is the file name of the generated explorer.
const Name = "inequality"

// Builder generates the multi-source inequality explorer.
type Builder struct {
	params common.Params
}

// New returns a builder using p.
func New(p common.Params) *Builder {
	return &Builder{params: p}
}

func (b *Builder) Name() string { return Name }

func (b *Builder) Sheets() []sheet.Ref {
	return []sheet.Ref{allTablesRef, lisWelfareRef, equivalenceRef, lisTablesRef, widWelfareRef, widTablesRef}
}

// Build expands the dimension sheets into the explorer.
func (b *Builder) Build(set sheet.Set) (*explorer.Explorer, error) {
	d, err := loadDimensions(set)
	if err != nil {
		return nil, err
	}

	e := explorer.New(Name)
	e.Header.
		Add("explorerTitle", "Inequality Data Explorer").
		Add("selection", "Chile", "Brazil", "South Africa", "United States", "France", "China").
		Add("explorerSubtitle", "").
		Add("isPublished", "false").
		Add("googleSheet", "").
		Add("wpBlockId", "").
		Add("entityType", "country or region")

	tables := explorer.Concat(b.buildLISTables(d), b.buildWIDTables(d))

	g := explorer.Concat(b.buildLISGraphers(d), b.buildWIDGraphers(d))
	g.SetAll("relatedQuestionText", explorer.Empty)
	g.SetAll("relatedQuestionUrl", explorer.Empty)
	g.SetWhere(func(r explorer.Row) bool {
		return r.Str("Source Dropdown") == lisSourceDropdown &&
			r.Str("Metric Dropdown") == "Gini coefficient" &&
			r.Str("Welfare type Dropdown") == "Disposable income (equivalized)"
	}, "defaultView", "true")
	e.Graphers = g

	links := make(map[string]string, len(d.links))
	for _, l := range d.links {
		links[l.Name] = l.Link
	}
	for _, slug := range common.Unique(tables.Column("tableSlug")) {
		link, ok := links[slug]
		if !ok {
			return nil, errors.NotFound("link for table " + slug + " in " + allTablesRef.Name)
		}
		columns := tables.Filter(func(r explorer.Row) bool {
			return r.Str("tableSlug") == slug
		}).Drop("tableSlug")
		e.AddTable(link, slug, columns)
	}
	return e, nil
}
