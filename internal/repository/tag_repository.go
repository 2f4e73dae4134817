package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type TagRepository struct {
	col *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{col: db.Collection("tags")}
}

func (r *TagRepository) Insert(ctx context.Context, t model.Tag) (model.Tag, error) {
	t.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return model.Tag{}, storeErr(err, "tag not found")
	}
	return t, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Tag, error) {
	var t model.Tag
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, storeErr(err, "tag not found")
	}
	return &t, nil
}

func (r *TagRepository) FindAll(ctx context.Context) ([]model.Tag, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err, "tag not found")
	}
	defer cur.Close(ctx)

	tags := []model.Tag{}
	if err := cur.All(ctx, &tags); err != nil {
		return nil, storeErr(err, "tag not found")
	}
	return tags, nil
}

func (r *TagRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Tag, error) {
	var t model.Tag
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		return nil, storeErr(err, "tag not found")
	}
	return &t, nil
}

func (r *TagRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "tag not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "tag not found")
	}
	return nil
}
