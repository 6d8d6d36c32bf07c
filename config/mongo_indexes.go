package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the indexes the persistence layer relies on:
// the unique email, the unique personal_info-per-resume singleton, and the
// per-resume ordering indexes for the section collections.
func EnsureMongoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.Collection("users")
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("uniq_email").
			SetUnique(true),
	}); err != nil {
		return err
	}

	resumes := db.Collection("resumes")
	if _, err := resumes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}},
		Options: options.Index().SetName("by_user_updated"),
	}); err != nil {
		return err
	}

	// Singleton guard behind the atomic upsert.
	personal := db.Collection("personal_info")
	if _, err := personal.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "resume_id", Value: 1}},
		Options: options.Index().
			SetName("uniq_resume_id").
			SetUnique(true),
	}); err != nil {
		return err
	}

	for _, name := range []string{"experiences", "educations", "skills", "projects", "certifications"} {
		col := db.Collection(name)
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "resume_id", Value: 1}, {Key: "order_index", Value: 1}},
			Options: options.Index().SetName("by_resume_order"),
		}); err != nil {
			return err
		}
	}

	return nil
}
