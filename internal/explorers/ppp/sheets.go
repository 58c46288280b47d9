package ppp

import (
	"explorergen/domain/sheet"
	"explorergen/internal/explorers/common"
)

// DocumentID is the spreadsheet holding the 2011 and 2017 poverty lines.
const DocumentID = "1mR0LPEGlY-wCp1q9lNTlDbVIG65JazKvHL16my9tH8Y"

var (
	povlines2011Ref = sheet.Ref{DocumentID: DocumentID, Name: "povlines_ppp2011"}
	povlines2017Ref = sheet.Ref{DocumentID: DocumentID, Name: "povlines_ppp2017"}
	povlinesBothRef = sheet.Ref{DocumentID: DocumentID, Name: "povlines_both"}
	povlinesRelRef  = sheet.Ref{DocumentID: DocumentID, Name: "povlines_rel"}
	surveyTypeRef   = sheet.Ref{DocumentID: DocumentID, Name: "survey_type"}
)

type povline struct {
	Cents           string `sheet:"cents"`
	DollarsText     string `sheet:"dollars_text"`
	TitleShare      string `sheet:"title_share"`
	TitleNumber     string `sheet:"title_number"`
	PovlineDropdown string `sheet:"povline_dropdown"`
	Subtitle        string `sheet:"subtitle"`
}

// povlineBoth pairs a 2011 line with its 2017 counterpart.
type povlineBoth struct {
	Cents2011       string `sheet:"cents_2011"`
	Cents2017       string `sheet:"cents_2017"`
	TitleShare      string `sheet:"title_share"`
	TitleNumber     string `sheet:"title_number"`
	PovlineDropdown string `sheet:"povline_dropdown"`
	Subtitle        string `sheet:"subtitle"`
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

// prices is one PPP round with its absolute lines.
type prices struct {
	year  string
	lines []povline
}

type dimensions struct {
	rounds  []prices
	both    []povlineBoth
	rel     []povlineRel
	surveys []surveyType
}

func loadDimensions(set sheet.Set) (*dimensions, error) {
	lines2011, err := common.Decode[povline](set, povlines2011Ref)
	if err != nil {
		return nil, err
	}
	lines2017, err := common.Decode[povline](set, povlines2017Ref)
	if err != nil {
		return nil, err
	}
	d := &dimensions{rounds: []prices{{"2011", lines2011}, {"2017", lines2017}}}
	if d.both, err = common.Decode[povlineBoth](set, povlinesBothRef); err != nil {
		return nil, err
	}
	if d.rel, err = common.Decode[povlineRel](set, povlinesRelRef); err != nil {
		return nil, err
	}
	if d.surveys, err = common.Decode[surveyType](set, surveyTypeRef); err != nil {
		return nil, err
	}
	return d, nil
}
