package models

type Experience struct {
	SectionMeta `bson:",inline"`

	Company     string `bson:"company" json:"company"`
	Position    string `bson:"position" json:"position"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	StartDate   string `bson:"start_date,omitempty" json:"start_date,omitempty"` // YYYY-MM
	EndDate     string `bson:"end_date,omitempty" json:"end_date,omitempty"`     // YYYY-MM or empty while current
	Current     bool   `bson:"current" json:"current"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Bullets []string `bson:"bullets" json:"bullets"`
}

// ApplyDefaults keeps the embedded bullet sequence a real (possibly empty)
// list in storage rather than null.
func (e *Experience) ApplyDefaults() {
	if e.Bullets == nil {
		e.Bullets = []string{}
	}
}
