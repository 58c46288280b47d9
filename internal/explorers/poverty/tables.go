package poverty

import (
	"fmt"

	"explorergen/domain/explorer"
)

const (
	sourceName         = "World Bank Poverty and Inequality Platform"
	sourceLink         = "https://pip.worldbank.org/"
	publishedBy        = "World Bank Poverty and Inequality Platform (PIP)"
	publishedByAdapted = "World Bank Poverty and Inequality Platform (PIP), adapted by Our World in Data."
	dollarUnit         = "international-$ at 2017 prices"

	largeBins = "100000;300000;1000000;3000000;10000000;30000000;100000000;300000000;1000000000;1000000001"
	tenthBins = "10;20;30;40;50;60;70;80;90;100"

	shortfallCaveat = " This is the amount of money that would be theoretically needed to lift the %s of all people in poverty up to the poverty line. However this is not a measure of the actual cost of eliminating poverty, since it does not take into account the costs involved in making the necessary transfers nor any changes in behaviour they would bring about."
	incomeGapCaveat = ` expressed as a share of the poverty line. This metric is sometimes called the "income gap ratio". It captures the depth of poverty in which those below the poverty line are living.`
	gapIndexCaveat  = " The poverty gap index is a measure that reflects both the depth and prevalence of poverty. It is defined as the mean shortfall of the total population from the poverty line counting the non-poor as having zero shortfall and expressed as a percentage of the poverty line.  It is worth unpacking that definition a little. For those below the poverty line, the shortfall corresponds to the amount of money required in order to reach the poverty line. For those at or above the poverty line, the shortfall is counted as zero. The average shortfall is then calculated across the total population – both poor and non-poor – and then expressed as a share of the poverty line. Unlike the more commonly-used metric of the headcount ratio, the poverty gap index is thus sensitive not only to whether a person’s income falls below the poverty line or not, but also by how much – i.e. to the depth of poverty they experience."
)

// column is the metadata of one exposed variable.
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

// buildTables emits one column per metric, poverty line and survey type.
// The survey_type column routes rows to their table block.
func (b *Builder) buildTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, s := range d.surveys {
		for _, p := range d.abs {
			b.addColumn(t, column{
				name:        fmt.Sprintf("Share of population below $%s a day", p.DollarsText),
				slug:        "headcount_ratio_" + p.Cents,
				description: fmt.Sprintf("%% of population living in households with an %s per person below $%s a day.", s.Text, p.DollarsText),
				publishedBy: publishedBy,
				unit:        "%",
				shortUnit:   "%",
				bins:        "3;10;20;30;40;50;60;70;80;90;100",
				scheme:      "OrRd",
			}, s)
		}
		for _, p := range d.abs {
			b.addColumn(t, column{
				name:        fmt.Sprintf("Number of people below $%s a day", p.DollarsText),
				slug:        "headcount_" + p.Cents,
				description: fmt.Sprintf("Number of people living in households with an %s per person below $%s a day.", s.Text, p.DollarsText),
				publishedBy: publishedBy,
				bins:        largeBins,
				scheme:      "Reds",
			}, s)
		}
		for _, p := range d.abs {
			b.addColumn(t, column{
				name:        fmt.Sprintf("$%s a day - total daily shortfall", p.DollarsText),
				slug:        "total_shortfall_" + p.Cents,
				description: fmt.Sprintf("The total shortfall from a poverty line of $%s a day."+shortfallCaveat, p.DollarsText, s.Text),
				publishedBy: publishedBy,
				unit:        dollarUnit,
				shortUnit:   "$",
				bins:        largeBins,
				scheme:      "Oranges",
			}, s)
		}
		for _, p := range d.abs {
			b.addColumn(t, column{
				name:        fmt.Sprintf("$%s a day - average daily shortfall", p.DollarsText),
				slug:        "avg_shortfall_" + p.Cents,
				description: fmt.Sprintf("The average shortfall from a poverty line of $%s a day (averaged across the population in poverty).", p.DollarsText),
				publishedBy: publishedBy,
				unit:        dollarUnit,
				shortUnit:   "$",
				bins:        p.ScaleAvgShortfall,
				scheme:      "Purples",
			}, s)
		}
		for _, p := range d.abs {
			b.addColumn(t, column{
				name:        fmt.Sprintf("$%s a day - income gap ratio", p.DollarsText),
				slug:        "income_gap_ratio_" + p.Cents,
				description: fmt.Sprintf("The average shortfall from a poverty line of $%s a day (averaged across the population in poverty)", p.DollarsText) + incomeGapCaveat,
				publishedBy: publishedBy,
				unit:        "%",
				shortUnit:   "%",
				bins:        tenthBins,
				scheme:      "YlOrRd",
			}, s)
		}
		for _, p := range d.abs {
			b.addColumn(t, column{
				name:        fmt.Sprintf("$%s a day - poverty gap index", p.DollarsText),
				slug:        "poverty_gap_index_" + p.Cents,
				description: fmt.Sprintf("The poverty gap index calculated at a poverty line of $%s a day.", p.DollarsText) + gapIndexCaveat,
				publishedBy: publishedBy,
				unit:        "%",
				shortUnit:   "%",
				bins:        tenthBins,
				scheme:      "RdPu",
			}, s)
		}

		for _, r := range d.rel {
			b.addColumn(t, column{
				name:        r.Percent + " of median - share of population below poverty line",
				slug:        "headcount_ratio_" + r.SlugSuffix,
				description: fmt.Sprintf("%% of population living in households with an %s per person below %s of the median.", s.Text, r.Percent),
				publishedBy: publishedByAdapted,
				unit:        "%",
				shortUnit:   "%",
				bins:        "5;10;15;20;25;30;30.0001",
				scheme:      "YlOrBr",
			}, s)
		}
		for _, r := range d.rel {
			b.addColumn(t, column{
				name:        r.Percent + " of median - total number of people below poverty line",
				slug:        "headcount_" + r.SlugSuffix,
				description: fmt.Sprintf("Number of people living in households with an %s per person below %s of the median.", s.Text, r.Percent),
				publishedBy: publishedByAdapted,
				bins:        largeBins,
				scheme:      "YlOrBr",
			}, s)
		}
		for _, r := range d.rel {
			b.addColumn(t, column{
				name:        r.Percent + " of median - total daily shortfall",
				slug:        "total_shortfall_" + r.SlugSuffix,
				description: fmt.Sprintf("The total shortfall from a poverty line of %s %s."+shortfallCaveat, r.Text, s.Text, s.Text),
				publishedBy: publishedByAdapted,
				bins:        largeBins,
				scheme:      "YlOrBr",
			}, s)
		}
		for _, r := range d.rel {
			b.addColumn(t, column{
				name:        r.Percent + " of median - average daily shortfall",
				slug:        "avg_shortfall_" + r.SlugSuffix,
				description: fmt.Sprintf("The average shortfall from a poverty line of of %s %s (averaged across the population in poverty).", r.Text, s.Text),
				publishedBy: publishedBy,
				unit:        dollarUnit,
				shortUnit:   "$",
				bins:        "1;2;5;10;20;20.0001",
				scheme:      "YlOrBr",
			}, s)
		}
		for _, r := range d.rel {
			b.addColumn(t, column{
				name:        r.Percent + " of median - income gap ratio",
				slug:        "income_gap_ratio_" + r.SlugSuffix,
				description: fmt.Sprintf("The average shortfall from a poverty line of of %s %s (averaged across the population in poverty)", r.Text, s.Text) + incomeGapCaveat,
				publishedBy: publishedBy,
				unit:        "%",
				shortUnit:   "%",
				bins:        tenthBins,
				scheme:      "YlOrBr",
			}, s)
		}
		for _, r := range d.rel {
			b.addColumn(t, column{
				name:        r.Percent + " of median - poverty gap index",
				slug:        "poverty_gap_index_" + r.SlugSuffix,
				description: fmt.Sprintf("The poverty gap index calculated at a poverty line of %s %s.", r.Text, s.Text) + gapIndexCaveat,
				publishedBy: publishedBy,
				unit:        "%",
				shortUnit:   "%",
				bins:        "3;6;9;12;15;18;21",
				scheme:      "YlOrBr",
			}, s)
		}
	}
	return t
}

var spellColumns = []string{
	"sourceName", "description", "sourceLink", "dataPublishedBy", "unit", "shortUnit",
	"tolerance", "type", "colorScaleNumericMinValue", "colorScaleNumericBins",
	"colorScaleEqualSizeBins", "colorScaleScheme", "survey_type",
}

// buildSpells emits, for every column of tables, one row per consumption and
// income survey spell carrying the column's metadata. master_var keeps the
// originating slug.
func (b *Builder) buildSpells(tables *explorer.Table) *explorer.Table {
	spells := explorer.NewTable()
	add := func(master explorer.Row, name, slug string) {
		row := spells.NewRow().
			Set("master_var", master.Get("slug")).
			Set("name", name).
			Set("slug", slug)
		for _, col := range spellColumns {
			row.Set(col, master.Get(col))
		}
	}
	for i := 0; i < tables.Len(); i++ {
		master := tables.Row(i)
		for c := 1; c <= b.params.ConsumptionSpells; c++ {
			add(master, "Consumption surveys", fmt.Sprintf("consumption_spell_%d", c))
		}
		for c := 1; c <= b.params.IncomeSpells; c++ {
			add(master, "Income surveys", fmt.Sprintf("income_spell_%d", c))
		}
	}
	return spells
}
