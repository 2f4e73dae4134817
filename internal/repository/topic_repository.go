package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type TopicRepository struct {
	col *mongo.Collection
}

func NewTopicRepository(db *mongo.Database) *TopicRepository {
	return &TopicRepository{col: db.Collection("topics")}
}

func (r *TopicRepository) Insert(ctx context.Context, t model.Topic) (model.Topic, error) {
	t.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return model.Topic{}, storeErr(err, "topic not found")
	}
	return t, nil
}

func (r *TopicRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Topic, error) {
	var t model.Topic
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, storeErr(err, "topic not found")
	}
	return &t, nil
}

func (r *TopicRepository) FindAll(ctx context.Context) ([]model.Topic, error) {
	return r.find(ctx, bson.M{})
}

func (r *TopicRepository) FindByCategory(ctx context.Context, category bson.ObjectID) ([]model.Topic, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *TopicRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Topic, error) {
	var t model.Topic
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		return nil, storeErr(err, "topic not found")
	}
	return &t, nil
}

func (r *TopicRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "topic not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "topic not found")
	}
	return nil
}

func (r *TopicRepository) find(ctx context.Context, filter bson.M) ([]model.Topic, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr(err, "topic not found")
	}
	defer cur.Close(ctx)

	topics := []model.Topic{}
	if err := cur.All(ctx, &topics); err != nil {
		return nil, storeErr(err, "topic not found")
	}
	return topics, nil
}
