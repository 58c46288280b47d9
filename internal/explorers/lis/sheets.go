package lis

import (
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

// DocumentID is the spreadsheet holding the LIS welfare, equivalence scale and
// table dimensions.
const DocumentID = "1UFdwB1iBpP2tEP6GtxCHvW1GGhjsFflh42FWR80rYIg"

var (
	welfareRef     = sheet.Ref{DocumentID: DocumentID, Name: "welfare"}
	equivalenceRef = sheet.Ref{DocumentID: DocumentID, Name: "equivalence_scales"}
	tablesRef      = sheet.Ref{DocumentID: DocumentID, Name: "tables"}
)

type welfare struct {
	Slug                 string `sheet:"slug"`
	WelfareType          string `sheet:"welfare_type"`
	Title                string `sheet:"title"`
	Description          string `sheet:"description"`
	DropdownOption       string `sheet:"dropdown_option"`
	Subtitle             string `sheet:"subtitle"`
	SubtitleIneq         string `sheet:"subtitle_ineq"`
	ScaleGini            string `sheet:"scale_gini"`
	ScaleTop10           string `sheet:"scale_top10"`
	ScaleBottom50        string `sheet:"scale_bottom50"`
	ScalePalmaRatio      string `sheet:"scale_palma_ratio"`
	ScaleRelativePoverty string `sheet:"scale_relative_poverty"`
	MinRelativePoverty   string `sheet:"min_relative_poverty"`
}

// equivalenceScale is one way of sharing household income among members.
// Checkbox is "true" for equivalized income.
type equivalenceScale struct {
	Slug        string `sheet:"slug"`
	Description string `sheet:"description"`
	Checkbox    string `sheet:"checkbox"`
	Note        string `sheet:"note"`
}

type table struct {
	Name string `sheet:"name"`
	Link string `sheet:"link"`
}

type dimensions struct {
	welfare []welfare
	scales  []equivalenceScale
	tables  []table
}

func loadDimensions(set sheet.Set) (*dimensions, error) {
	var d dimensions
	var err error
	if d.welfare, err = common.Decode[welfare](set, welfareRef); err != nil {
		return nil, err
	}
	if d.scales, err = common.Decode[equivalenceScale](set, equivalenceRef); err != nil {
		return nil, err
	}
	if d.tables, err = common.Decode[table](set, tablesRef); err != nil {
		return nil, err
	}
	return &d, nil
}
