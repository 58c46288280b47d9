package distribution

import (
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

const (
	// DocumentID is the multi-source spreadsheet holding the merged table
	// links, the source checkbox combinations and the shared decile labels.
	DocumentID = "1wcFsNZCEn_6SJ05BFkXKLUyvCrnigfR8eeemGKgAYsI"

	LISDocumentID = "1UFdwB1iBpP2tEP6GtxCHvW1GGhjsFflh42FWR80rYIg"
	WIDDocumentID = "18T5IGnpyJwb8KL9USYvME6IaLEcYIo26ioHCpkDnwRQ"
	PIPDocumentID = "17KJ9YcvfdmO_7-Sv2Ij0vmzAQI6rXSIqHfJtgFHN-a8"
)

var (
	mergedTablesRef = sheet.Ref{DocumentID: DocumentID, Name: "merged_tables"}
	viewsRef        = sheet.Ref{DocumentID: DocumentID, Name: "source_checkbox"}
	deciles9Ref     = sheet.Ref{DocumentID: DocumentID, Name: "deciles9"}
	deciles10Ref    = sheet.Ref{DocumentID: DocumentID, Name: "deciles10"}

	lisWelfareRef      = sheet.Ref{DocumentID: LISDocumentID, Name: "welfare"}
	equivalenceRef     = sheet.Ref{DocumentID: LISDocumentID, Name: "equivalence_scales"}
	lisDeciles9Ref     = sheet.Ref{DocumentID: LISDocumentID, Name: "deciles9"}
	lisDeciles10Ref    = sheet.Ref{DocumentID: LISDocumentID, Name: "deciles10"}
	lisAggregationsRef = sheet.Ref{DocumentID: LISDocumentID, Name: "income_aggregation"}

	widWelfareRef      = sheet.Ref{DocumentID: WIDDocumentID, Name: "welfare"}
	widDeciles9Ref     = sheet.Ref{DocumentID: WIDDocumentID, Name: "deciles9"}
	widDeciles10Ref    = sheet.Ref{DocumentID: WIDDocumentID, Name: "deciles10"}
	widAggregationsRef = sheet.Ref{DocumentID: WIDDocumentID, Name: "income_aggregation"}

	pipTablesRef       = sheet.Ref{DocumentID: PIPDocumentID, Name: "table"}
	pipDeciles9Ref     = sheet.Ref{DocumentID: PIPDocumentID, Name: "deciles9"}
	pipDeciles10Ref    = sheet.Ref{DocumentID: PIPDocumentID, Name: "deciles10"}
	pipAggregationsRef = sheet.Ref{DocumentID: PIPDocumentID, Name: "income_aggregation"}
)

var refs = []sheet.Ref{
	mergedTablesRef, viewsRef, deciles9Ref, deciles10Ref,
	lisWelfareRef, equivalenceRef, lisDeciles9Ref, lisDeciles10Ref, lisAggregationsRef,
	widWelfareRef, widDeciles9Ref, widDeciles10Ref, widAggregationsRef,
	pipTablesRef, pipDeciles9Ref, pipDeciles10Ref, pipAggregationsRef,
}

type tableLink struct {
	Name string `sheet:"name"`
	Link string `sheet:"link"`
}

// sourceView is one combination of the PIP, WID and LIS checkboxes. The
// slug templates hold {agg}, {dec9_*} and {dec10_*} placeholders; a blank
// template drops the view for that metric.
type sourceView struct {
	TypeTitle string `sheet:"type_title"`
	PIP       string `sheet:"pip"`
	WID       string `sheet:"wid"`
	LIS       string `sheet:"lis"`
	Mean      string `sheet:"mean"`
	Median    string `sheet:"median"`
	Threshold string `sheet:"thr"`
	Average   string `sheet:"avg"`
	Share     string `sheet:"share"`
}

// decile maps one decile to each source's notation and to its dropdown label.
type decile struct {
	Ordinal     string `sheet:"ordinal"`
	Decile      string `sheet:"decile"`
	WIDNotation string `sheet:"wid_notation"`
	LISNotation string `sheet:"lis_notation"`
	Dropdown    string `sheet:"dropdown"`
}

// sourceDecile is a row of a source's deciles9 or deciles10 sheet. Each
// source names its notation column differently, so the tagged row types
// below decode the sheets and convert to it.
type sourceDecile struct {
	Ordinal    string
	Notation   string
	Decile     string
	ScaleThr   string
	ScaleAvg   string
	ScaleShare string
}

type lisDecile struct {
	Ordinal    string `sheet:"ordinal"`
	Notation   string `sheet:"lis_notation"`
	Decile     string `sheet:"decile,optional"`
	ScaleThr   string `sheet:"scale_thr,optional"`
	ScaleAvg   string `sheet:"scale_avg,optional"`
	ScaleShare string `sheet:"scale_share,optional"`
}

type widDecile struct {
	Ordinal    string `sheet:"ordinal"`
	Notation   string `sheet:"wid_notation"`
	Decile     string `sheet:"decile,optional"`
	ScaleThr   string `sheet:"scale_thr,optional"`
	ScaleAvg   string `sheet:"scale_avg,optional"`
	ScaleShare string `sheet:"scale_share,optional"`
}

type pipDecile struct {
	Ordinal    string `sheet:"ordinal"`
	Notation   string
	Decile     string `sheet:"decile"`
	ScaleThr   string
	ScaleAvg   string
	ScaleShare string `sheet:"scale_share,optional"`
}

type aggregation struct {
	SlugSuffix  string `sheet:"slug_suffix"`
	Aggregation string `sheet:"aggregation"`
	Multiplier  string `sheet:"multiplier"`
	Scale       string `sheet:"scale,optional"`
}

type lisWelfare struct {
	Slug          string `sheet:"slug"`
	WelfareType   string `sheet:"welfare_type"`
	TechnicalText string `sheet:"technical_text"`
	Subtitle      string `sheet:"subtitle"`
	ScaleMean     string `sheet:"scale_mean"`
	ScaleMedian   string `sheet:"scale_median"`
}

type equivalenceScale struct {
	Slug string `sheet:"slug"`
	Note string `sheet:"note"`
}

type widWelfare struct {
	Slug          string `sheet:"slug"`
	WelfareType   string `sheet:"welfare_type"`
	TechnicalText string `sheet:"technical_text"`
	Subtitle      string `sheet:"subtitle"`
	Note          string `sheet:"note"`
	ScaleMean     string `sheet:"scale_mean"`
	ScaleMedian   string `sheet:"scale_median"`
}

type pipTable struct {
	Text string `sheet:"text"`
}

type dimensions struct {
	links     []tableLink
	views     []sourceView
	deciles9  []decile
	deciles10 []decile

	lisWelfare      []lisWelfare
	scales          []equivalenceScale
	lisDeciles9     []sourceDecile
	lisDeciles10    []sourceDecile
	lisAggregations []aggregation

	widWelfare      []widWelfare
	widDeciles9     []sourceDecile
	widDeciles10    []sourceDecile
	widAggregations []aggregation

	pipTables       []pipTable
	pipDeciles9     []sourceDecile
	pipDeciles10    []sourceDecile
	pipAggregations []aggregation
}

func decode[T any](set sheet.Set, ref sheet.Ref, dst *[]T) error {
	rows, err := common.Decode[T](set, ref)
	*dst = rows
	return err
}

func decodeDeciles[T lisDecile | widDecile | pipDecile](set sheet.Set, ref sheet.Ref, dst *[]sourceDecile) error {
	var rows []T
	if err := decode(set, ref, &rows); err != nil {
		return err
	}
	*dst = make([]sourceDecile, len(rows))
	for i, r := range rows {
		(*dst)[i] = sourceDecile(r)
	}
	return nil
}

func loadDimensions(set sheet.Set) (*dimensions, error) {
	var d dimensions
	for _, err := range []error{
		decode(set, mergedTablesRef, &d.links),
		decode(set, viewsRef, &d.views),
		decode(set, deciles9Ref, &d.deciles9),
		decode(set, deciles10Ref, &d.deciles10),
		decode(set, lisWelfareRef, &d.lisWelfare),
		decode(set, equivalenceRef, &d.scales),
		decodeDeciles[lisDecile](set, lisDeciles9Ref, &d.lisDeciles9),
		decodeDeciles[lisDecile](set, lisDeciles10Ref, &d.lisDeciles10),
		decode(set, lisAggregationsRef, &d.lisAggregations),
		decode(set, widWelfareRef, &d.widWelfare),
		decodeDeciles[widDecile](set, widDeciles9Ref, &d.widDeciles9),
		decodeDeciles[widDecile](set, widDeciles10Ref, &d.widDeciles10),
		decode(set, widAggregationsRef, &d.widAggregations),
		decode(set, pipTablesRef, &d.pipTables),
		decodeDeciles[pipDecile](set, pipDeciles9Ref, &d.pipDeciles9),
		decodeDeciles[pipDecile](set, pipDeciles10Ref, &d.pipDeciles10),
		decode(set, pipAggregationsRef, &d.pipAggregations),
	} {
		if err != nil {
			return nil, err
		}
	}
	return &d, nil
}
