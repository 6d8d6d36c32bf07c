package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultResumeTitle    = "Untitled Resume"
	DefaultResumeTemplate = "modern"
)

// Resume is the aggregate root; every section document points back at it
// via resume_id and the resume itself knows nothing about its sections
// until an assembly read joins them.
type Resume struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title    string             `bson:"title" json:"title"`
	Template string             `bson:"template" json:"template"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullResume is the assembled aggregate. All six section keys are always
// present: an absent personal info becomes an empty object and empty lists
// stay empty slices, never null.
type FullResume struct {
	Resume `bson:",inline"`

	PersonalInfo   *PersonalInfo   `json:"personalInfo"`
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}
