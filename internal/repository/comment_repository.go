package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

func (r *CommentRepository) Insert(ctx context.Context, c model.Comment) (model.Comment, error) {
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return model.Comment{}, storeErr(err, "comment not found")
	}
	return c, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var c model.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, storeErr(err, "comment not found")
	}
	return &c, nil
}

// FindRoots lists top-level comments newest first, optionally filtered by
// lesson, approval state and a case-insensitive content search.
func (r *CommentRepository) FindRoots(ctx context.Context, lesson string, approved *bool, search string) ([]model.Comment, error) {
	filter := bson.M{"parentId": nil}
	if lesson != "" {
		filter["lesson"] = lesson
	}
	if approved != nil {
		filter["approved"] = *approved
	}
	if search != "" {
		filter["content"] = bson.M{"$regex": search, "$options": "i"}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, storeErr(err, "comment not found")
	}
	defer cur.Close(ctx)

	comments := []model.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, storeErr(err, "comment not found")
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Comment, error) {
	var c model.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return nil, storeErr(err, "comment not found")
	}
	return &c, nil
}

// SetApproved flips approval on one comment; reports whether it matched.
func (r *CommentRepository) SetApproved(ctx context.Context, id bson.ObjectID, approved bool) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"approved": approved}})
	if err != nil {
		return false, storeErr(err, "comment not found")
	}
	return res.MatchedCount > 0, nil
}

func (r *CommentRepository) PushReply(ctx context.Context, parentID, childID bson.ObjectID) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": parentID}, bson.M{"$push": bson.M{"replies": childID}})
	if err != nil {
		return storeErr(err, "comment not found")
	}
	if res.MatchedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "parent comment not found")
	}
	return nil
}

func (r *CommentRepository) PullReply(ctx context.Context, parentID, childID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": parentID}, bson.M{"$pull": bson.M{"replies": childID}})
	return storeErr(err, "comment not found")
}

// DeleteMany removes a collected subtree in one call.
func (r *CommentRepository) DeleteMany(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, storeErr(err, "comment not found")
	}
	return res.DeletedCount, nil
}
