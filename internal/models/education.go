package models

type Education struct {
	SectionMeta `bson:",inline"`

	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree,omitempty" json:"degree,omitempty"`
	Field       string `bson:"field,omitempty" json:"field,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	StartDate   string `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     string `bson:"end_date,omitempty" json:"end_date,omitempty"`
	GPA         string `bson:"gpa,omitempty" json:"gpa,omitempty"`

	Achievements []string `bson:"achievements" json:"achievements"`
}

// ApplyDefaults keeps the embedded achievement sequence a real (possibly
// empty) list in storage rather than null.
func (e *Education) ApplyDefaults() {
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
}
