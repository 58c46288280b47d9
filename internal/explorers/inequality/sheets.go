package inequality

import (
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

const (
	// LISDocumentID also carries all_the_tables, the link registry for every
	// source.
	LISDocumentID = "1UFdwB1iBpP2tEP6GtxCHvW1GGhjsFflh42FWR80rYIg"
	// WIDDocumentID holds the WID welfare and table dimensions.
	WIDDocumentID = "18T5IGnpyJwb8KL9USYvME6IaLEcYIo26ioHCpkDnwRQ"
)

var (
	allTablesRef   = sheet.Ref{DocumentID: LISDocumentID, Name: "all_the_tables"}
	lisWelfareRef  = sheet.Ref{DocumentID: LISDocumentID, Name: "welfare"}
	equivalenceRef = sheet.Ref{DocumentID: LISDocumentID, Name: "equivalence_scales"}
	lisTablesRef   = sheet.Ref{DocumentID: LISDocumentID, Name: "tables"}
	widWelfareRef  = sheet.Ref{DocumentID: WIDDocumentID, Name: "welfare"}
	widTablesRef   = sheet.Ref{DocumentID: WIDDocumentID, Name: "tables"}
)

type tableLink struct {
	Name string `sheet:"name"`
	Link string `sheet:"link"`
}

type lisWelfare struct {
	Slug             string `sheet:"slug"`
	WelfareType      string `sheet:"welfare_type"`
	TechnicalText    string `sheet:"technical_text"`
	Subtitle         string `sheet:"subtitle"`
	Title            string `sheet:"title"`
	DropdownOption   string `sheet:"dropdown_option"`
	ScaleGini        string `sheet:"scale_gini"`
	ScaleTop10       string `sheet:"scale_top10"`
	ScaleBottom50    string `sheet:"scale_bottom50"`
	ScaleP90P10Ratio string `sheet:"scale_p90_p10_ratio"`
	ScaleP90P50Ratio string `sheet:"scale_p90_p50_ratio"`
	ScaleP50P10Ratio string `sheet:"scale_p50_p10_ratio"`
	ScalePalmaRatio  string `sheet:"scale_palma_ratio"`
}

type equivalenceScale struct {
	Slug string `sheet:"slug"`
	Text string `sheet:"text"`
	Note string `sheet:"note"`
}

type widWelfare struct {
	Slug             string `sheet:"slug"`
	WelfareType      string `sheet:"welfare_type"`
	TechnicalText    string `sheet:"technical_text"`
	Subtitle         string `sheet:"subtitle"`
	Note             string `sheet:"note"`
	Title            string `sheet:"title"`
	DropdownOption   string `sheet:"dropdown_option"`
	ScaleGini        string `sheet:"scale_gini"`
	ScaleTop10       string `sheet:"scale_top10"`
	ScaleTop1        string `sheet:"scale_top1"`
	ScaleTop01       string `sheet:"scale_top01"`
	ScaleTop001      string `sheet:"scale_top001"`
	ScaleTop0001     string `sheet:"scale_top0001"`
	ScaleP90P10Ratio string `sheet:"scale_p90_p10_ratio"`
	ScaleP90P50Ratio string `sheet:"scale_p90_p50_ratio"`
	ScaleP50P10Ratio string `sheet:"scale_p50_p10_ratio"`
	ScalePalmaRatio  string `sheet:"scale_palma_ratio"`
}

// sourceTable is a data table of one source. SourceName feeds the source
// dropdown.
type sourceTable struct {
	Name       string `sheet:"name"`
	SourceName string `sheet:"source_name,optional"`
}

type dimensions struct {
	links      []tableLink
	lisWelfare []lisWelfare
	scales     []equivalenceScale
	lisTables  []sourceTable
	widWelfare []widWelfare
	widTables  []sourceTable
}

func loadDimensions(set sheet.Set) (*dimensions, error) {
	var d dimensions
	var err error
	if d.links, err = common.Decode[tableLink](set, allTablesRef); err != nil {
		return nil, err
	}
	if d.lisWelfare, err = common.Decode[lisWelfare](set, lisWelfareRef); err != nil {
		return nil, err
	}
	if d.scales, err = common.Decode[equivalenceScale](set, equivalenceRef); err != nil {
		return nil, err
	}
	if d.lisTables, err = common.Decode[sourceTable](set, lisTablesRef); err != nil {
		return nil, err
	}
	if d.widWelfare, err = common.Decode[widWelfare](set, widWelfareRef); err != nil {
		return nil, err
	}
	if d.widTables, err = common.Decode[sourceTable](set, widTablesRef); err != nil {
		return nil, err
	}
	return &d, nil
}
