package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type AuthorRepository struct {
	col *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{col: db.Collection("authors")}
}

func (r *AuthorRepository) Insert(ctx context.Context, a model.Author) (model.Author, error) {
	a.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return model.Author{}, storeErr(err, "author not found")
	}
	return a, nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Author, error) {
	var a model.Author
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, storeErr(err, "author not found")
	}
	return &a, nil
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err, "author not found")
	}
	defer cur.Close(ctx)

	authors := []model.Author{}
	if err := cur.All(ctx, &authors); err != nil {
		return nil, storeErr(err, "author not found")
	}
	return authors, nil
}

func (r *AuthorRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Author, error) {
	var a model.Author
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return nil, storeErr(err, "author not found")
	}
	return &a, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "author not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "author not found")
	}
	return nil
}
