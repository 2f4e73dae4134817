package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

// listProjection drops the heavy body fields from list responses.
var listProjection = bson.M{"components": 0, "longDescription": 0}

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) Insert(ctx context.Context, p model.Post) (model.Post, error) {
	p.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return model.Post{}, storeErr(err, "post not found")
	}
	return p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByIdentifier resolves a 24-hex identifier as an id and anything else as
// a slug. excludeDrafts adds the draft filter the public read paths use.
func (r *PostRepository) FindByIdentifier(ctx context.Context, identifier string, excludeDrafts bool) (*model.Post, error) {
	filter := bson.M{}
	if oid, err := bson.ObjectIDFromHex(identifier); err == nil {
		filter["_id"] = oid
	} else {
		filter["slug"] = identifier
	}
	if excludeDrafts {
		filter["status"] = bson.M{"$ne": model.PostDraft}
	}
	return r.findOne(ctx, filter)
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *PostRepository) FindBySlugAndCategory(ctx context.Context, slug string, category bson.ObjectID) (*model.Post, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "category": category})
}

// SlugTaken reports whether another post already owns the slug.
func (r *PostRepository) SlugTaken(ctx context.Context, slug string, exclude bson.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug, "_id": bson.M{"$ne": exclude}}
	err := r.col.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, storeErr(err, "post not found")
	}
	return true, nil
}

// List applies the admin listing filters. Drafts are excluded unless asked for.
func (r *PostRepository) List(ctx context.Context, status string, category, topic *bson.ObjectID, includeDrafts bool) ([]model.Post, error) {
	filter := bson.M{}
	if !includeDrafts {
		filter["status"] = bson.M{"$ne": model.PostDraft}
	}
	if status != "" {
		filter["status"] = status
	}
	if category != nil {
		filter["category"] = *category
	}
	if topic != nil {
		filter["topic"] = *topic
	}
	return r.findList(ctx, filter)
}

// FindByCategory returns the non-draft posts directly in a category.
// topicless restricts the result to posts with no topic.
func (r *PostRepository) FindByCategory(ctx context.Context, category bson.ObjectID, topicless bool) ([]model.Post, error) {
	filter := bson.M{"category": category, "status": bson.M{"$ne": model.PostDraft}}
	if topicless {
		filter["topic"] = nil
	}
	return r.findList(ctx, filter)
}

func (r *PostRepository) FindByCategoryAndTopic(ctx context.Context, category, topic bson.ObjectID) ([]model.Post, error) {
	return r.findList(ctx, bson.M{"category": category, "topic": topic, "status": model.PostPublished})
}

func (r *PostRepository) FindAllByCategory(ctx context.Context, category bson.ObjectID, includeDrafts bool) ([]model.Post, error) {
	filter := bson.M{"category": category}
	if !includeDrafts {
		filter["status"] = bson.M{"$ne": model.PostDraft}
	}
	return r.findList(ctx, filter)
}

// FindDueScheduled returns posts whose scheduled publish time has arrived.
func (r *PostRepository) FindDueScheduled(ctx context.Context, now time.Time) ([]model.Post, error) {
	filter := bson.M{
		"status":      model.PostScheduled,
		"publishDate": bson.M{"$lte": now},
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr(err, "post not found")
	}
	defer cur.Close(ctx)

	posts := []model.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, storeErr(err, "post not found")
	}
	return posts, nil
}

// Publish flips a still-scheduled post to published. The status filter makes
// the operation idempotent under overlapping sweeps.
func (r *PostRepository) Publish(ctx context.Context, id bson.ObjectID, now time.Time) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.PostScheduled},
		bson.M{"$set": bson.M{"status": model.PostPublished, "updatedAt": now}},
	)
	if err != nil {
		return false, storeErr(err, "post not found")
	}
	return res.ModifiedCount > 0, nil
}

func (r *PostRepository) Replace(ctx context.Context, p model.Post) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return storeErr(err, "post not found")
	}
	if res.MatchedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "post not found")
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "post not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "post not found")
	}
	return nil
}

func (r *PostRepository) findOne(ctx context.Context, filter bson.M) (*model.Post, error) {
	var p model.Post
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		return nil, storeErr(err, "post not found")
	}
	return &p, nil
}

func (r *PostRepository) findList(ctx context.Context, filter bson.M) ([]model.Post, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().
		SetProjection(listProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, storeErr(err, "post not found")
	}
	defer cur.Close(ctx)

	posts := []model.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, storeErr(err, "post not found")
	}
	return posts, nil
}
