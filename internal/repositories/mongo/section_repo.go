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

// SectionRepository is the shared CRUD surface for the five ordered section
// kinds. T is the concrete model; PT is *T constrained to expose the
// embedded SectionMeta.
type SectionRepository[T any, PT interface {
	*T
	models.Sectioner
}] interface {
	Create(ctx context.Context, doc PT) error
	GetByID(ctx context.Context, id primitive.ObjectID) (PT, error)
	ListByResume(ctx context.Context, resumeID primitive.ObjectID) ([]T, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByResume(ctx context.Context, resumeID primitive.ObjectID) error
	NextOrderIndex(ctx context.Context, resumeID primitive.ObjectID) (int, error)
	Reorder(ctx context.Context, resumeID primitive.ObjectID, ids []primitive.ObjectID) error
}

type sectionRepo[T any, PT interface {
	*T
	models.Sectioner
}] struct {
	col *mongo.Collection
}

func NewSectionRepo[T any, PT interface {
	*T
	models.Sectioner
}](db *mongo.Database, collection string) SectionRepository[T, PT] {
	return &sectionRepo[T, PT]{col: db.Collection(collection)}
}

func (r *sectionRepo[T, PT]) Create(ctx context.Context, doc PT) error {
	m := doc.Meta()
	now := time.Now().UTC()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *sectionRepo[T, PT]) GetByID(ctx context.Context, id primitive.ObjectID) (PT, error) {
	var out T
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return PT(&out), nil
}

// ListByResume returns the resume's sections sorted ascending by
// order_index, with _id as tiebreak so equal ordinals keep insertion order.
func (r *sectionRepo[T, PT]) ListByResume(ctx context.Context, resumeID primitive.ObjectID) ([]T, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"resume_id": resumeID},
		options.Find().SetSort(bson.D{
			{Key: "order_index", Value: 1},
			{Key: "_id", Value: 1},
		}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *sectionRepo[T, PT]) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
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

func (r *sectionRepo[T, PT]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *sectionRepo[T, PT]) DeleteByResume(ctx context.Context, resumeID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"resume_id": resumeID})
	return err
}

// NextOrderIndex implements the append-at-end policy: one past the current
// maximum order_index under the resume, or 0 when the list is empty.
func (r *sectionRepo[T, PT]) NextOrderIndex(ctx context.Context, resumeID primitive.ObjectID) (int, error) {
	var top struct {
		OrderIndex int `bson:"order_index"`
	}
	err := r.col.FindOne(ctx,
		bson.M{"resume_id": resumeID},
		options.FindOne().
			SetSort(bson.D{{Key: "order_index", Value: -1}}).
			SetProjection(bson.M{"order_index": 1}),
	).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return top.OrderIndex + 1, nil
}

// Reorder rewrites order_index for each id as its 0-based position in the
// supplied sequence. The resume_id filter keeps a stray id from another
// resume from being touched.
func (r *sectionRepo[T, PT]) Reorder(ctx context.Context, resumeID primitive.ObjectID, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(ids))
	now := time.Now().UTC()
	for i, id := range ids {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id, "resume_id": resumeID}).
			SetUpdate(bson.M{"$set": bson.M{"order_index": i, "updated_at": now}}))
	}

	_, err := r.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}
