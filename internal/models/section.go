package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionMeta is embedded by the five ordered section kinds (experience,
// education, skill, project, certification) so a single generic repository
// can mint ids, stamp timestamps, and maintain order_index for all of them.
type SectionMeta struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ResumeID   primitive.ObjectID `bson:"resume_id" json:"resume_id"`
	OrderIndex int                `bson:"order_index" json:"order_index"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (m *SectionMeta) Meta() *SectionMeta { return m }

// Sectioner is satisfied by pointers to every section model through the
// embedded SectionMeta.
type Sectioner interface {
	Meta() *SectionMeta
}
