package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type AdRepository struct {
	col *mongo.Collection
}

func NewAdRepository(db *mongo.Database) *AdRepository {
	return &AdRepository{col: db.Collection("ads")}
}

func (r *AdRepository) Insert(ctx context.Context, a model.Ad) (model.Ad, error) {
	a.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return model.Ad{}, storeErr(err, "ad not found")
	}
	return a, nil
}

func (r *AdRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Ad, error) {
	var a model.Ad
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, storeErr(err, "ad not found")
	}
	return &a, nil
}

func (r *AdRepository) FindAll(ctx context.Context) ([]model.Ad, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err, "ad not found")
	}
	defer cur.Close(ctx)

	ads := []model.Ad{}
	if err := cur.All(ctx, &ads); err != nil {
		return nil, storeErr(err, "ad not found")
	}
	return ads, nil
}

func (r *AdRepository) Update(ctx context.Context, id bson.ObjectID, a model.Ad) (*model.Ad, error) {
	a.ID = id
	var out model.Ad
	err := r.col.FindOneAndReplace(ctx,
		bson.M{"_id": id}, a,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, storeErr(err, "ad not found")
	}
	return &out, nil
}

func (r *AdRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "ad not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "ad not found")
	}
	return nil
}
