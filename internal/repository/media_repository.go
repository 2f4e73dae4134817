package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type MediaRepository struct {
	col *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{col: db.Collection("media")}
}

func (r *MediaRepository) Insert(ctx context.Context, m model.Media) (model.Media, error) {
	m.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return model.Media{}, storeErr(err, "media not found")
	}
	return m, nil
}

func (r *MediaRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Media, error) {
	var m model.Media
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, storeErr(err, "media not found")
	}
	return &m, nil
}

func (r *MediaRepository) FindAll(ctx context.Context) ([]model.Media, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, storeErr(err, "media not found")
	}
	defer cur.Close(ctx)

	media := []model.Media{}
	if err := cur.All(ctx, &media); err != nil {
		return nil, storeErr(err, "media not found")
	}
	return media, nil
}

func (r *MediaRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Media, error) {
	var m model.Media
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		return nil, storeErr(err, "media not found")
	}
	return &m, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "media not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "media not found")
	}
	return nil
}
