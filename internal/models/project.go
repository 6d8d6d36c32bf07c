package models

type Project struct {
	SectionMeta `bson:",inline"`

	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	URL          string   `bson:"url,omitempty" json:"url,omitempty"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies,omitempty"`
	StartDate    string   `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate      string   `bson:"end_date,omitempty" json:"end_date,omitempty"`
}
