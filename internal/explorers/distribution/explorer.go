// Package distribution builds the explorer comparing incomes across the
// distribution in the World Bank Poverty and Inequality Platform, the World
// Inequality Database and the Luxembourg Income Study. Readers tick the
// sources to overlay and pick a metric, a decile and an income aggregation.
package distribution

import (
	"strings"

	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/errors"
	"explorergen/internal/explorers/common"
)

// Name is the file name of the generated explorer.
const Name = "incomes-across-distribution-comparison"

// Builder generates the source comparison explorer.
type Builder struct {
	params common.Params
}

// New returns a builder using p.
func New(p common.Params) *Builder {
	return &Builder{params: p}
}

func (b *Builder) Name() string { return Name }

func (b *Builder) Sheets() []sheet.Ref {
	out := make([]sheet.Ref, len(refs))
	copy(out, refs)
	return out
}

// Build expands the dimension sheets into the explorer. Every merged table
// carries the PIP, WID and LIS columns, in that order.
func (b *Builder) Build(set sheet.Set) (*explorer.Explorer, error) {
	d, err := loadDimensions(set)
	if err != nil {
		return nil, err
	}

	e := explorer.New(Name)
	e.Header.
		Add("explorerTitle", "Incomes Across the Distribution Explorer - Source comparison").
		Add("selection", "Chile", "Brazil", "South Africa", "United States", "France", "China").
		Add("explorerSubtitle", "").
		Add("isPublished", "true").
		Add("googleSheet", "").
		Add("wpBlockId", "").
		Add("entityType", "country or region")

	tables := explorer.Concat(b.buildPIPTables(d), b.buildWIDTables(d), b.buildLISTables(d))
	e.Graphers = b.buildGraphers(d)

	links := make(map[string]string, len(d.links))
	for _, l := range d.links {
		links[l.Name] = l.Link
	}
	for _, slug := range common.Unique(tables.Column("tableSlug")) {
		link := strings.TrimSpace(links[slug])
		if link == "" {
			return nil, errors.NotFound("link for table " + slug + " in " + mergedTablesRef.Name)
		}
		columns := tables.Filter(func(r explorer.Row) bool {
			return r.Str("tableSlug") == slug
		}).Drop("tableSlug")
		e.AddTable(link, slug, columns)
	}
	return e, nil
}
