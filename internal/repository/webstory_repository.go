package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type WebStoryRepository struct {
	col *mongo.Collection
}

func NewWebStoryRepository(db *mongo.Database) *WebStoryRepository {
	return &WebStoryRepository{col: db.Collection("web_stories")}
}

func (r *WebStoryRepository) Insert(ctx context.Context, s model.WebStory) (model.WebStory, error) {
	s.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return model.WebStory{}, storeErr(err, "web story not found")
	}
	return s, nil
}

// FindByIdentifier resolves a 24-hex identifier as an id, anything else as a slug.
func (r *WebStoryRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.WebStory, error) {
	filter := bson.M{}
	if oid, err := bson.ObjectIDFromHex(identifier); err == nil {
		filter["_id"] = oid
	} else {
		filter["slug"] = identifier
	}
	var s model.WebStory
	if err := r.col.FindOne(ctx, filter).Decode(&s); err != nil {
		return nil, storeErr(err, "web story not found")
	}
	return &s, nil
}

// FindByFullPath matches the derived categorySlug/slug path.
func (r *WebStoryRepository) FindByFullPath(ctx context.Context, fullPath string) (*model.WebStory, error) {
	var s model.WebStory
	if err := r.col.FindOne(ctx, bson.M{"fullPath": fullPath}).Decode(&s); err != nil {
		return nil, storeErr(err, "web story not found")
	}
	return &s, nil
}

// FindPublished returns published stories, newest first.
func (r *WebStoryRepository) FindPublished(ctx context.Context) ([]model.WebStory, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"isPublished": true},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, storeErr(err, "web story not found")
	}
	defer cur.Close(ctx)

	stories := []model.WebStory{}
	if err := cur.All(ctx, &stories); err != nil {
		return nil, storeErr(err, "web story not found")
	}
	return stories, nil
}

func (r *WebStoryRepository) FindAll(ctx context.Context) ([]model.WebStory, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, storeErr(err, "web story not found")
	}
	defer cur.Close(ctx)

	stories := []model.WebStory{}
	if err := cur.All(ctx, &stories); err != nil {
		return nil, storeErr(err, "web story not found")
	}
	return stories, nil
}

func (r *WebStoryRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.WebStory, error) {
	var s model.WebStory
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, storeErr(err, "web story not found")
	}
	return &s, nil
}

func (r *WebStoryRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "web story not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "web story not found")
	}
	return nil
}

type WebStoryCategoryRepository struct {
	col *mongo.Collection
}

func NewWebStoryCategoryRepository(db *mongo.Database) *WebStoryCategoryRepository {
	return &WebStoryCategoryRepository{col: db.Collection("web_story_categories")}
}

func (r *WebStoryCategoryRepository) Insert(ctx context.Context, c model.WebStoryCategory) (model.WebStoryCategory, error) {
	c.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return model.WebStoryCategory{}, storeErr(err, "web story category not found")
	}
	return c, nil
}

func (r *WebStoryCategoryRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.WebStoryCategory, error) {
	var c model.WebStoryCategory
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, storeErr(err, "web story category not found")
	}
	return &c, nil
}

// FindByIdentifier resolves a 24-hex identifier as an id, anything else as a slug.
func (r *WebStoryCategoryRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.WebStoryCategory, error) {
	filter := bson.M{}
	if oid, err := bson.ObjectIDFromHex(identifier); err == nil {
		filter["_id"] = oid
	} else {
		filter["slug"] = identifier
	}
	var c model.WebStoryCategory
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		return nil, storeErr(err, "web story category not found")
	}
	return &c, nil
}

func (r *WebStoryCategoryRepository) FindAll(ctx context.Context) ([]model.WebStoryCategory, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err, "web story category not found")
	}
	defer cur.Close(ctx)

	cats := []model.WebStoryCategory{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, storeErr(err, "web story category not found")
	}
	return cats, nil
}

func (r *WebStoryCategoryRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.WebStoryCategory, error) {
	var c model.WebStoryCategory
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return nil, storeErr(err, "web story category not found")
	}
	return &c, nil
}

func (r *WebStoryCategoryRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "web story category not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "web story category not found")
	}
	return nil
}
