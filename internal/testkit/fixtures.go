package testkit

import (
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/distribution"
	"explorergen/internal/explorers/inequality"
	"explorergen/internal/explorers/lis"
	"explorergen/internal/explorers/poverty"
	"explorergen/internal/explorers/ppp"
)

func add(set sheet.Set, doc, name string, headers []string, rows ...[]string) {
	ref := sheet.Ref{DocumentID: doc, Name: name}
	set[ref] = sheet.New(ref, headers, rows)
}

// PovertySheets holds two absolute lines, one relative line and two survey types.
func PovertySheets() sheet.Set {
	set := sheet.Set{}
	add(set, poverty.DocumentID, "povlines_abs",
		[]string{"cents", "dollars_text", "title_share", "title_number", "title_total_shortfall",
			"title_avg_shortfall", "title_income_gap_ratio", "subtitle", "subtitle_total_shortfall",
			"subtitle_avg_shortfall", "subtitle_income_gap_ratio", "povline_dropdown", "scale_avg_shortfall"},
		[]string{"100", "1", "Share below $1", "Number below $1", "Total shortfall at $1",
			"Average shortfall at $1", "Income gap at $1", "Lines at $1", "Total at $1",
			"Average at $1", "Gap at $1", "$1 per day", "0.1;0.2;0.5"},
		[]string{"215", "2.15", "Share below $2.15", "Number below $2.15", "Total shortfall at $2.15",
			"Average shortfall at $2.15", "Income gap at $2.15", "Extreme poverty", "Total at $2.15",
			"Average at $2.15", "Gap at $2.15", "$2.15 per day: International Poverty Line", "0.2;0.5;1"},
	)
	add(set, poverty.DocumentID, "povlines_rel",
		[]string{"percent", "slug_suffix", "text", "title_share", "title_number", "dropdown"},
		[]string{"50%", "50_median", "50% of the median", "Share below 50% of median", "Number below 50% of median", "50% of median"},
	)
	add(set, poverty.DocumentID, "survey_type",
		[]string{"table_name", "text", "dropdown_option"},
		[]string{"inc_or_cons", "income or consumption", "Income or consumption"},
		[]string{"income", "income", "Income"},
	)
	return set
}

// PPPSheets holds one 2011 line, two 2017 lines, one paired line and the 60%
// relative line the comparison views point at.
func PPPSheets() sheet.Set {
	set := sheet.Set{}
	abs := []string{"cents", "dollars_text", "title_share", "title_number", "povline_dropdown", "subtitle"}
	add(set, ppp.DocumentID, "povlines_ppp2011", abs,
		[]string{"190", "1.90", "Share below $1.90 (2011 prices)", "Number below $1.90 (2011 prices)",
			"$1.90 per day: International Poverty Line", "Extreme poverty at 2011 prices"},
	)
	add(set, ppp.DocumentID, "povlines_ppp2017", abs,
		[]string{"215", "2.15", "Share below $2.15 (2017 prices)", "Number below $2.15 (2017 prices)",
			"$2.15 per day: International Poverty Line", "Extreme poverty at 2017 prices"},
		[]string{"1000", "10", "Share below $10 (2017 prices)", "Number below $10 (2017 prices)",
			"$10 per day", "Poverty at $10"},
	)
	add(set, ppp.DocumentID, "povlines_both",
		[]string{"cents_2011", "cents_2017", "title_share", "title_number", "povline_dropdown", "subtitle"},
		[]string{"190", "215", "Share below the International Poverty Line", "Number below the International Poverty Line",
			"International Poverty Line", "Compared across price rounds"},
	)
	add(set, ppp.DocumentID, "povlines_rel",
		[]string{"percent", "slug_suffix", "text", "title_share", "title_number", "dropdown"},
		[]string{"60%", "60_median", "60% of the median", "Share below 60% of median", "Number below 60% of median",
			"Relative poverty: 60% of median"},
	)
	add(set, ppp.DocumentID, "survey_type",
		[]string{"table_name", "text", "dropdown_option"},
		[]string{"inc_or_cons", "income or consumption", "Income or consumption"},
		[]string{"income", "income", "Income"},
	)
	return set
}

// addLISDocument adds the welfare, equivalence_scales and tables sheets every
// LIS-based explorer reads. Their columns are the union of what each reads.
// The welfare rows are the before and after tax measures the LIS comparison
// views pair, plus the disposable income measure the multi-source default
// view selects.
func addLISDocument(set sheet.Set) {
	add(set, lis.DocumentID, "welfare",
		[]string{"slug", "welfare_type", "technical_text", "title", "description", "dropdown_option",
			"subtitle", "subtitle_ineq", "scale_gini", "scale_top10", "scale_bottom50",
			"scale_p90_p10_ratio", "scale_p90_p50_ratio", "scale_p50_p10_ratio", "scale_palma_ratio",
			"scale_relative_poverty", "min_relative_poverty", "scale_mean", "scale_median"},
		[]string{"mi", "income", "market household income", "before tax", "Income before taxes and benefits.",
			"Before tax", "Income is before tax.", "Inequality is measured before tax.", "0.3;0.4;0.5",
			"20;30;40", "10;20;30", "2;4;6", "1;2;3", "1;2;3", "1;2;3", "5;10;15", "0", "10;20;50", "5;10;20"},
		[]string{"dhi", "income", "disposable household income", "after tax", "Income after taxes and benefits.",
			"After tax", "Income is after tax.", "Inequality is measured after tax.", "0.2;0.3;0.4",
			"20;30;40", "10;20;30", "2;4;6", "1;2;3", "1;2;3", "1;2;3", "5;10;15", "2.5", "10;20;50", "5;10;20"},
		[]string{"di", "income", "disposable income", "disposable income", "Disposable income.",
			"Disposable income", "Income is disposable.", "Inequality of disposable income.", "0.2;0.3;0.4",
			"20;30;40", "10;20;30", "2;4;6", "1;2;3", "1;2;3", "0.5;1;2", "5;10;15", "0", "10;20;50", "5;10;20"},
	)
	add(set, lis.DocumentID, "equivalence_scales",
		[]string{"slug", "text", "description", "checkbox", "note"},
		[]string{"eq", "equivalized", "Income is equivalized.", "true", "Equivalized by the square root of household size."},
		[]string{"pc", "per capita", "Income is per capita.", "false", "Divided by household size."},
	)
	add(set, lis.DocumentID, "tables",
		[]string{"name", "source_name", "link"},
		[]string{"lis_main", "Luxembourg Income Study (LIS)", "https://example.org/lis/main.csv"},
	)
}

// InequalitySheets holds three LIS welfare measures crossed with two
// equivalence scales in one LIS table, and one WID welfare measure in one
// WID table that leaves its source name blank.
func InequalitySheets() sheet.Set {
	set := sheet.Set{}
	addLISDocument(set)
	add(set, inequality.LISDocumentID, "all_the_tables",
		[]string{"name", "link"},
		[]string{"lis_main", "https://example.org/lis/main.csv"},
		[]string{"wid_main", "https://example.org/wid/main.csv"},
	)
	add(set, inequality.WIDDocumentID, "welfare",
		[]string{"slug", "welfare_type", "technical_text", "subtitle", "note", "title", "dropdown_option",
			"scale_gini", "scale_top10", "scale_top1", "scale_top01", "scale_top001", "scale_top0001",
			"scale_p90_p10_ratio", "scale_p90_p50_ratio", "scale_p50_p10_ratio", "scale_palma_ratio",
			"scale_mean", "scale_median"},
		[]string{"pretax", "income", "pretax national income", "Income is before taxes.",
			"Estimated from tax records.", "before tax", "Pretax income", "0.4;0.5;0.6",
			"30;40;50", "10;20", "5;10", "1;2", "0.5;1", "5;10;20", "2;3", "2;3;4", "1;2;3",
			"20;50;100", "10;20;50"},
	)
	add(set, inequality.WIDDocumentID, "tables",
		[]string{"name"},
		[]string{"wid_main"},
	)
	return set
}

// LISSheets holds the LIS document alone.
func LISSheets() sheet.Set {
	set := sheet.Set{}
	addLISDocument(set)
	return set
}

// DistributionSheets holds the inequality fixtures plus the decile and
// aggregation sheets of every source, one merged table, and two checkbox
// combinations: all three sources, and LIS alone without share views.
func DistributionSheets() sheet.Set {
	set := InequalitySheets()
	add(set, distribution.DocumentID, "merged_tables",
		[]string{"name", "link"},
		[]string{"distribution_main", "https://example.org/multisource/distribution.csv"},
	)
	add(set, distribution.DocumentID, "source_checkbox",
		[]string{"type_title", "pip", "wid", "lis", "mean", "median", "thr", "avg", "share"},
		[]string{"after tax", "true", "true", "true",
			"mean{agg} p0p100_avg_pretax{agg} mean_dhi_eq{agg}",
			"median{agg} median_pretax{agg} median_dhi_eq{agg}",
			"decile{dec9_pip}_thr{agg} {dec9_wid}_thr_pretax{agg} thr_{dec9_lis}_dhi_eq{agg}",
			"decile{dec10_pip}_avg{agg} {dec10_wid}_avg_pretax{agg} avg_{dec10_lis}_dhi_eq{agg}",
			"decile{dec10_pip}_share {dec10_wid}_share_pretax share_{dec10_lis}_dhi_eq"},
		[]string{"before tax", "false", "false", "true",
			"mean_mi_eq{agg}", "median_mi_eq{agg}", "thr_{dec9_lis}_mi_eq{agg}", "avg_{dec10_lis}_mi_eq{agg}", ""},
	)
	add(set, distribution.DocumentID, "deciles9",
		[]string{"ordinal", "decile", "wid_notation", "lis_notation", "dropdown"},
		[]string{"poorest decile", "1", "p10p20", "p10", "1 (poorest)"},
		[]string{"fifth decile", "5", "p50p60", "p50", "5 (median)"},
	)
	add(set, distribution.DocumentID, "deciles10",
		[]string{"ordinal", "decile", "wid_notation", "lis_notation", "dropdown"},
		[]string{"poorest decile", "1", "p0p10", "d1", "1 (poorest)"},
		[]string{"richest decile", "10", "p90p100", "d10", "10 (richest)"},
	)

	aggregations := [][]string{{"_day", "day", "1"}, {"_year", "year", "365"}}
	for _, doc := range []string{distribution.LISDocumentID, distribution.WIDDocumentID} {
		add(set, doc, "income_aggregation", []string{"slug_suffix", "aggregation", "multiplier"}, aggregations...)
	}
	add(set, distribution.PIPDocumentID, "income_aggregation",
		[]string{"slug_suffix", "aggregation", "scale", "multiplier"},
		[]string{"_day", "day", "1;2;5;10", "1"},
		[]string{"_year", "year", "500;1000;5000", "365"},
	)

	add(set, distribution.LISDocumentID, "deciles9",
		[]string{"ordinal", "lis_notation", "decile", "scale_thr"},
		[]string{"poorest decile", "p10", "1", "1;2;5"},
		[]string{"fifth decile", "p50", "5", "5;10;20"},
	)
	add(set, distribution.LISDocumentID, "deciles10",
		[]string{"ordinal", "lis_notation", "scale_avg", "scale_share"},
		[]string{"poorest decile", "d1", "1;2;5", "1;2;3"},
		[]string{"richest decile", "d10", "50;100;200", "20;30;40"},
	)
	add(set, distribution.WIDDocumentID, "deciles9",
		[]string{"ordinal", "wid_notation", "decile", "scale_thr"},
		[]string{"poorest decile", "p10p20", "1", "1;2;5"},
		[]string{"fifth decile", "p50p60", "5", "5;10;20"},
	)
	add(set, distribution.WIDDocumentID, "deciles10",
		[]string{"ordinal", "wid_notation", "scale_avg", "scale_share"},
		[]string{"poorest decile", "p0p10", "1;2;5", "1;2;3"},
		[]string{"richest decile", "p90p100", "50;100;200", "20;30;40"},
	)

	add(set, distribution.PIPDocumentID, "table",
		[]string{"text"},
		[]string{"income or consumption"},
	)
	add(set, distribution.PIPDocumentID, "deciles9",
		[]string{"ordinal", "decile"},
		[]string{"poorest decile", "1"},
		[]string{"fifth decile", "5"},
	)
	add(set, distribution.PIPDocumentID, "deciles10",
		[]string{"ordinal", "decile", "scale_share"},
		[]string{"poorest decile", "1", "1;2;3"},
		[]string{"richest decile", "10", "20;30;40"},
	)
	return set
}
