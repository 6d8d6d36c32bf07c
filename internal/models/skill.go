package models

type Skill struct {
	SectionMeta `bson:",inline"`

	Name     string `bson:"name" json:"name"`
	Category string `bson:"category,omitempty" json:"category,omitempty"` // technical|soft|language|tool
	Level    string `bson:"level,omitempty" json:"level,omitempty"`       // beginner|intermediate|advanced|expert
}
