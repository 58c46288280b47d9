package lis

import (
	"fmt"
	"strconv"
	"strings"

	"explorergen/domain/explorer"
	"explorergen/internal/explorers/common"
)

const (
	newLine    = "<br><br>"
	notesTitle = "NOTES ON HOW WE PROCESSED THIS INDICATOR"
)

var processingDescription = strings.Join([]string{
	"The Luxembourg Income Study data is created from standardized household survey microdata available in their <a href='https://www.lisdatacenter.org/data-access/lissy/'>LISSY platform</a>. The estimations follow the methodology available in LIS, Key Figures and DART platform.",
	"After tax income is obtained by using the disposable household income variable (dhi)",
	"Before tax income is estimated by calculating the sum of income from labor and capital (variable hifactor), cash transfers and in-kind goods and services from privates (hiprivate) and private pensions (hi33). This is done only for surveys where tax and contributions are fully captured, collected or imputed.",
	"Income data is converted from local currency into international-$ by dividing by the <a href='https://www.lisdatacenter.org/resources/ppp-deflators/'>LIS PPP factor</a>, available as an additional database in the system.",
	"Incomes are top and bottom-coded by replacing negative values with zeros and setting boundaries for extreme values of log income: at the top Q3 plus 3 times the interquartile range (Q3-Q1), and at the bottom Q1 minus 3 times the interquartile range.",
	"Incomes are equivalized by dividing each household observation by the square root of the number of household members (nhhmem). Per capita estimates are calculated by dividing incomes by the number of household members.",
}, newLine)

const (
	processingPoverty      = "Poverty indicators are obtained by using <a href='https://ideas.repec.org/c/boc/bocode/s366004.html'>Stata’s povdeco function</a>. Weights are set as the product between the number of household members (nhhmem) and the normalized household weight (hwgt). The function generates FGT(0) and FGT(1), headcount ratio and poverty gap index. After extraction, further data processing steps are done to estimate other poverty indicators using these values, population and poverty lines for absolute and relative poverty."
	processingGini         = "Gini coefficients are obtained by using <a href='https://ideas.repec.org/c/boc/bocode/s366007.html'>Stata’s ineqdec0 function</a>. Weights are set as the product between the number of household members (nhhmem) and the normalized household weight (hwgt). From this function, mean and median values are also calculated."
	processingDistribution = "Income shares and thresholds by decile are obtained by using <a href='https://ideas.repec.org/c/boc/bocode/s366005.html'>Stata’s sumdist function</a>. The parameters set are again the weight (nhhmem*hwgt) and the number of quantile groups (10). Threshold ratios, share ratios and averages by decile are estimated after the use of LISSY with this data."
)

// Definitions open both the column descriptions and the grapher subtitles.
const (
	giniDefinition  = "The Gini coefficient measures inequality on a scale from 0 to 1. Higher values indicate higher inequality."
	palmaDefinition = "The Palma ratio is a measure of inequality that divides the share received by the richest 10% by the share of the poorest 40%. Higher values indicate higher inequality."
)

func topShareDefinition(w string) string {
	return fmt.Sprintf("The share of %s received by the richest 10%% of the population.", w)
}

func bottomShareDefinition(w string) string {
	return fmt.Sprintf("The share of %s received by the poorest 50%% of the population.", w)
}

func relativePovertyDefinition(w string) string {
	return fmt.Sprintf("The share of the population with %s below 50%% of the median. Relative poverty reflects the extent of inequality within the bottom of the distribution.", w)
}

// minValue reads a color scale floor from the welfare sheet.
func minValue(s string) explorer.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return explorer.Empty
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return explorer.Float(f)
	}
	return explorer.Str(s)
}

func (b *Builder) buildTables(d *dimensions) *explorer.Table {
	t := explorer.NewTable()
	for _, tab := range d.tables {
		start := t.Len()
		common.AddEntityColumns(t)
		for _, w := range d.welfare {
			wt := w.WelfareType
			for _, eq := range d.scales {
				suffix := w.Slug + "_" + eq.Slug
				describe := func(definition, processing string) string {
					return strings.Join([]string{definition, w.Description, eq.Description, notesTitle, processingDescription, processing}, newLine)
				}

				t.NewRow().
					Set("name", fmt.Sprintf("Gini coefficient (%s)", w.Title)).
					Set("slug", "gini_"+suffix).
					Set("description", describe(giniDefinition, processingGini)).
					Set("unit", explorer.Empty).
					Set("shortUnit", explorer.Empty).
					Set("type", "Numeric").
					Set("colorScaleNumericBins", w.ScaleGini).
					Set("colorScaleNumericMinValue", explorer.Float(1)).
					Set("colorScaleScheme", "Oranges")
				t.NewRow().
					Set("name", fmt.Sprintf("%s share of the richest 10%% (%s)", common.Capitalize(wt), w.Title)).
					Set("slug", "share_p100_"+suffix).
					Set("description", describe(topShareDefinition(wt), processingDistribution)).
					Set("unit", "%").
					Set("shortUnit", "%").
					Set("type", "Numeric").
					Set("colorScaleNumericBins", w.ScaleTop10).
					Set("colorScaleNumericMinValue", explorer.Float(100)).
					Set("colorScaleScheme", "OrRd")
				t.NewRow().
					Set("name", fmt.Sprintf("%s share of the poorest 50%% (%s)", common.Capitalize(wt), w.Title)).
					Set("slug", "share_bottom50_"+suffix).
					Set("description", describe(bottomShareDefinition(wt), processingDistribution)).
					Set("unit", "%").
					Set("shortUnit", "%").
					Set("type", "Numeric").
					Set("colorScaleNumericBins", w.ScaleBottom50).
					Set("colorScaleNumericMinValue", explorer.Float(100)).
					Set("colorScaleScheme", "Blues")
				t.NewRow().
					Set("name", fmt.Sprintf("Palma ratio (%s)", w.Title)).
					Set("slug", "palma_ratio_"+suffix).
					Set("description", describe(palmaDefinition, processingDistribution)).
					Set("unit", explorer.Empty).
					Set("shortUnit", explorer.Empty).
					Set("type", "Numeric").
					Set("colorScaleNumericBins", w.ScalePalmaRatio).
					Set("colorScaleNumericMinValue", explorer.Float(0)).
					Set("colorScaleScheme", "YlOrBr")
				t.NewRow().
					Set("name", fmt.Sprintf("Share in relative poverty (%s)", w.Title)).
					Set("slug", "headcount_ratio_50_median_"+suffix).
					Set("description", describe(relativePovertyDefinition(wt), processingPoverty)).
					Set("unit", "%").
					Set("shortUnit", "%").
					Set("type", "Numeric").
					Set("colorScaleNumericBins", w.ScaleRelativePoverty).
					Set("colorScaleNumericMinValue", minValue(w.MinRelativePoverty)).
					Set("colorScaleScheme", "YlOrBr")
			}
		}
		t.SetFrom(start, "tableSlug", tab.Name)
	}
	common.LIS.Stamp(t)
	t.SetAll("tolerance", b.params.Tolerance)
	t.SetAll("colorScaleEqualSizeBins", "true")
	return t
}
