package poverty

import (
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

// DocumentID is the spreadsheet holding the poverty line and survey dimensions.
const DocumentID = "17KJ9YcvfdmO_7-Sv2Ij0vmzAQI6rXSIqHfJtgFHN-a8"

var (
	povlinesAbsRef = sheet.Ref{DocumentID: DocumentID, Name: "povlines_abs"}
	povlinesRelRef = sheet.Ref{DocumentID: DocumentID, Name: "povlines_rel"}
	surveyTypeRef  = sheet.Ref{DocumentID: DocumentID, Name: "survey_type"}
)

type povlineAbs struct {
	Cents                  string `sheet:"cents"`
	DollarsText            string `sheet:"dollars_text"`
	TitleShare             string `sheet:"title_share"`
	TitleNumber            string `sheet:"title_number"`
	TitleTotalShortfall    string `sheet:"title_total_shortfall"`
	TitleAvgShortfall      string `sheet:"title_avg_shortfall"`
	TitleIncomeGapRatio    string `sheet:"title_income_gap_ratio"`
	Subtitle               string `sheet:"subtitle"`
	SubtitleTotalShortfall string `sheet:"subtitle_total_shortfall"`
	SubtitleAvgShortfall   string `sheet:"subtitle_avg_shortfall"`
	SubtitleIncomeGapRatio string `sheet:"subtitle_income_gap_ratio"`
	PovlineDropdown        string `sheet:"povline_dropdown"`
	ScaleAvgShortfall      string `sheet:"scale_avg_shortfall"`
}

type povlineRel struct {
	Percent     string `sheet:"percent"`
	SlugSuffix  string `sheet:"slug_suffix"`
	Text        string `sheet:"text"`
	TitleShare  string `sheet:"title_share"`
	TitleNumber string `sheet:"title_number"`
	Dropdown    string `sheet:"dropdown"`
}

type surveyType struct {
	TableName      string `sheet:"table_name"`
	Text           string `sheet:"text"`
	DropdownOption string `sheet:"dropdown_option"`
}

type dimensions struct {
	abs     []povlineAbs
	rel     []povlineRel
	surveys []surveyType
}

func loadDimensions(set sheet.Set) (*dimensions, error) {
	var d dimensions
	var err error
	if d.abs, err = common.Decode[povlineAbs](set, povlinesAbsRef); err != nil {
		return nil, err
	}
	if d.rel, err = common.Decode[povlineRel](set, povlinesRelRef); err != nil {
		return nil, err
	}
	if d.surveys, err = common.Decode[surveyType](set, surveyTypeRef); err != nil {
		return nil, err
	}
	return &d, nil
}
