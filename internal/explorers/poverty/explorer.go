// Package poverty builds the expanded World Bank poverty explorer at 2017
// prices: six absolute and six relative poverty metrics for every poverty
// line and household survey type, plus the survey-spell views that show
// breaks between less comparable surveys.
package poverty

import (
	"explorergen/domain/explorer"
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

// Name is the file name of the generated explorer.
const Name = "poverty-explorer-expanded"

const tableBase = "https://raw.githubusercontent.com/owid/notebooks/main/BetterDataDocs/JoeHasell/PIP/data/ppp_2017/final/OWID_internal_upload/explorer_database/"

// Builder generates the poverty explorer.
type Builder struct {
	params common.Params
}

// New returns a builder using p.
func New(p common.Params) *Builder {
	return &Builder{params: p}
}

func (b *Builder) Name() string { return Name }

func (b *Builder) Sheets() []sheet.Ref {
	return []sheet.Ref{povlinesAbsRef, povlinesRelRef, surveyTypeRef}
}

// Build expands the dimension sheets into the explorer.
func (b *Builder) Build(set sheet.Set) (*explorer.Explorer, error) {
	d, err := loadDimensions(set)
	if err != nil {
		return nil, err
	}

	e := explorer.New(Name)
	e.Header.
		Add("explorerTitle", "Poverty Data Explorer of World Bank data: Expanded metrics").
		Add("selection", "Mozambique", "Nigeria", "Kenya", "Bangladesh", "Bolivia", "World").
		Add("explorerSubtitle", "<i><a href='https://github.com/owid/poverty-data'>Download Poverty data on GitHub</a></i>").
		Add("isPublished", "false").
		Add("googleSheet", povlinesAbsRef.DocumentURL()).
		Add("wpBlockId", "52633").
		Add("entityType", "country or region")

	tables := b.buildTables(d)
	spells := b.buildSpells(tables)
	e.Graphers = b.buildGraphers(d).Drop("survey_type")

	surveys := make([]string, 0, len(d.surveys))
	for _, s := range d.surveys {
		surveys = append(surveys, s.TableName)
	}
	surveys = common.Unique(surveys)

	for _, survey := range surveys {
		columns := tables.Filter(bySurvey(survey)).Drop("survey_type")
		e.AddTable(tableBase+survey+"/poverty_"+survey+".csv", survey, columns)
	}
	for _, master := range common.Unique(spells.Column("master_var")) {
		for _, survey := range surveys {
			columns := spells.Filter(func(r explorer.Row) bool {
				return r.Str("master_var") == master && r.Str("survey_type") == survey
			}).Drop("master_var", "survey_type")
			slug := survey + "_" + master
			e.AddTable(tableBase+"comparability_data/"+survey+"/"+master+".csv", slug, columns)
		}
	}
	return e, nil
}

func bySurvey(survey string) func(explorer.Row) bool {
	return func(r explorer.Row) bool { return r.Str("survey_type") == survey }
}
