package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalInfo is a singleton per resume, enforced by an atomic upsert
// keyed on resume_id (plus a unique index), never by read-then-write.
type PersonalInfo struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	ResumeID primitive.ObjectID `bson:"resume_id" json:"resume_id,omitzero"`

	FullName string `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Summary  string `bson:"summary,omitempty" json:"summary,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at,omitzero"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at,omitzero"`
}
