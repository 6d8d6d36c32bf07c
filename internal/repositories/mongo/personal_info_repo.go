package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PersonalInfoRepository interface {
	GetByResume(ctx context.Context, resumeID primitive.ObjectID) (*models.PersonalInfo, error)
	Upsert(ctx context.Context, resumeID primitive.ObjectID, fields bson.M) (*models.PersonalInfo, error)
	DeleteByResume(ctx context.Context, resumeID primitive.ObjectID) error
}

type personalInfoRepo struct {
	col *mongo.Collection
}

func NewPersonalInfoRepo(db *mongo.Database) PersonalInfoRepository {
	return &personalInfoRepo{col: db.Collection("personal_info")}
}

func (r *personalInfoRepo) GetByResume(ctx context.Context, resumeID primitive.ObjectID) (*models.PersonalInfo, error) {
	var pi models.PersonalInfo
	err := r.col.FindOne(ctx, bson.M{"resume_id": resumeID}).Decode(&pi)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &pi, err
}

// Upsert atomically creates or merge-updates the single personal info
// document for a resume. Concurrent callers cannot produce two documents:
// the write is a single server-side upsert keyed on resume_id, backed by a
// unique index on that field.
func (r *personalInfoRepo) Upsert(ctx context.Context, resumeID primitive.ObjectID, fields bson.M) (*models.PersonalInfo, error) {
	now := time.Now().UTC()

	set := bson.M{"updated_at": now}
	for k, v := range fields {
		set[k] = v
	}

	var pi models.PersonalInfo
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"resume_id": resumeID},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"resume_id": resumeID, "created_at": now},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&pi)
	if err != nil {
		return nil, err
	}
	return &pi, nil
}

func (r *personalInfoRepo) DeleteByResume(ctx context.Context, resumeID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"resume_id": resumeID})
	return err
}
