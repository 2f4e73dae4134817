package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique and query indexes every collection relies on.
// Safe to call on every startup; existing indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"categories": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "parentCategory", Value: 1}}},
		},
		"posts": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "fullPathSlug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "publishDate", Value: 1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "lesson", Value: 1}}},
			{Keys: bson.D{{Key: "approved", Value: 1}}},
			{Keys: bson.D{{Key: "parentId", Value: 1}}},
		},
		"web_stories": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "fullPath", Value: 1}}, Options: unique},
		},
		"web_story_categories": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"topics": {
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
