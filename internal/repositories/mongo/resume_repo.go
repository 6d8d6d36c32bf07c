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

type ResumeRepository interface {
	Create(ctx context.Context, rs *models.Resume) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resume, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Resume, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type resumeRepo struct {
	col *mongo.Collection
}

func NewResumeRepo(db *mongo.Database) ResumeRepository {
	return &resumeRepo{col: db.Collection("resumes")}
}

func (r *resumeRepo) Create(ctx context.Context, rs *models.Resume) error {
	now := time.Now().UTC()
	if rs.ID.IsZero() {
		rs.ID = primitive.NewObjectID()
	}
	rs.CreatedAt = now
	rs.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, rs)
	return err
}

func (r *resumeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Resume, error) {
	var rs models.Resume
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &rs, err
}

// ListByUser returns the user's resumes, most recently modified first.
func (r *resumeRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Resume, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Resume
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Resume{}
	}
	return out, nil
}

func (r *resumeRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
