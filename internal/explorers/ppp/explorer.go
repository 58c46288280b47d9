// Package ppp builds the explorer comparing World Bank poverty estimates at
// 2011 and 2017 international prices.
package ppp

import (
	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

// Name is the file name of the generated explorer.
const Name = "poverty-explorer-2011-vs-2017-ppp"

const tableBase = "https://raw.githubusercontent.com/owid/notebooks/main/BetterDataDocs/JoeHasell/PIP/data/ppp_vs/final/OWID_internal_upload/explorer_database/"

// Builder generates the 2011 vs 2017 PPP poverty explorer.
type Builder struct {
	params common.Params
}

// New returns a builder using p.
func New(p common.Params) *Builder {
	return &Builder{params: p}
}

func (b *Builder) Name() string { return Name }

func (b *Builder) Sheets() []sheet.Ref {
	return []sheet.Ref{povlines2011Ref, povlines2017Ref, povlinesBothRef, povlinesRelRef, surveyTypeRef}
}

// Build expands the dimension sheets into the explorer.
func (b *Builder) Build(set sheet.Set) (*explorer.Explorer, error) {
	d, err := loadDimensions(set)
	if err != nil {
		return nil, err
	}

	e := explorer.New(Name)
	e.Header.
		Add("explorerTitle", "Poverty Data Explorer of World Bank data: 2011 vs. 2017 prices").
		Add("selection", "Mozambique", "Nigeria", "Kenya", "Bangladesh", "Bolivia", "World").
		Add("explorerSubtitle", "<i><a href='https://github.com/owid/poverty-data'>Download Poverty data on GitHub</a></i>").
		Add("isPublished", "true").
		Add("googleSheet", surveyTypeRef.DocumentURL()).
		Add("wpBlockId", "52633").
		Add("entityType", "country or region")

	tables := b.buildTables(d)
	e.Graphers = b.buildGraphers(d).Drop("survey_type")

	var surveys []string
	for _, s := range d.surveys {
		surveys = append(surveys, s.TableName)
	}
	for _, survey := range common.Unique(surveys) {
		columns := tables.Filter(func(r explorer.Row) bool {
			return r.Str("survey_type") == survey
		}).Drop("survey_type")
		e.AddTable(tableBase+survey+"/poverty_"+survey+".csv", survey, columns)
	}
	return e, nil
}
