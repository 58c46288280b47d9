package common

import "explorergen/domain/explorer"

// Source is the attribution stamped on every column of a source's tables.
type Source struct {
	Name        string
	PublishedBy string
	Link        string
}

var (
	LIS = Source{
		Name:        "Luxembourg Income Study (2023)",
		PublishedBy: "Luxembourg Income Study (LIS) Database, http://www.lisdatacenter.org (multiple countries; 1967-2021). Luxembourg, LIS.",
		Link:        "https://www.lisdatacenter.org/our-data/lis-database/",
	}
	WID = Source{
		Name:        "World Inequality Database (WID.world) (2024)",
		PublishedBy: "World Inequality Database (WID), https://wid.world",
		Link:        "https://wid.world",
	}
)

// Stamp sets the attribution columns on every row of t.
func (s Source) Stamp(t *explorer.Table) {
	t.SetAll("sourceName", s.Name)
	t.SetAll("dataPublishedBy", s.PublishedBy)
	t.SetAll("sourceLink", s.Link)
}

// AddEntityColumns appends the Country and Year columns every LIS and WID
// table starts with.
func AddEntityColumns(t *explorer.Table) {
	t.NewRow().Set("name", "Country").Set("slug", "country").Set("type", "EntityName")
	t.NewRow().Set("name", "Year").Set("slug", "year").Set("type", "Year")
}
