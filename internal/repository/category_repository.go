package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

func (r *CategoryRepository) Insert(ctx context.Context, c model.Category) (model.Category, error) {
	c.ID = bson.NewObjectID()
	if c.Children == nil {
		c.Children = []bson.ObjectID{}
	}
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return model.Category{}, storeErr(err, "category not found")
	}
	return c, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Category, error) {
	var c model.Category
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return nil, storeErr(err, "category not found")
	}
	return &c, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&c)
	if err != nil {
		return nil, storeErr(err, "category not found")
	}
	return &c, nil
}

// FindBySlugUnderParent matches a slug constrained to a parent (nil parent
// means a root category). Used when walking a slug path.
func (r *CategoryRepository) FindBySlugUnderParent(ctx context.Context, slug string, parent *bson.ObjectID) (*model.Category, error) {
	filter := bson.M{"slug": slug}
	if parent != nil {
		filter["parentCategory"] = *parent
	} else {
		filter["parentCategory"] = nil
	}
	var c model.Category
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		return nil, storeErr(err, "category path not found")
	}
	return &c, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *CategoryRepository) Filter(ctx context.Context, status string, sortByOrder bool) ([]model.Category, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	var opts *options.FindOptionsBuilder
	if sortByOrder {
		opts = options.Find().SetSort(bson.D{{Key: "positionOrder", Value: 1}})
	}
	return r.find(ctx, filter, opts)
}

func (r *CategoryRepository) FindChildren(ctx context.Context, parentID bson.ObjectID) ([]model.Category, error) {
	return r.find(ctx, bson.M{"parentCategory": parentID}, nil)
}

// FindByIDs returns the matching categories keyed by id; missing ids are
// simply absent from the map.
func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Category, error) {
	if len(ids) == 0 {
		return map[bson.ObjectID]model.Category{}, nil
	}
	cats, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[bson.ObjectID]model.Category, len(cats))
	for _, c := range cats {
		out[c.ID] = c
	}
	return out, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Category, error) {
	var c model.Category
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return nil, storeErr(err, "category not found")
	}
	return &c, nil
}

func (r *CategoryRepository) PushChild(ctx context.Context, parentID, childID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": parentID}, bson.M{"$push": bson.M{"children": childID}})
	return storeErr(err, "category not found")
}

func (r *CategoryRepository) PullChild(ctx context.Context, parentID, childID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": parentID}, bson.M{"$pull": bson.M{"children": childID}})
	return storeErr(err, "category not found")
}

func (r *CategoryRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "category not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "category not found")
	}
	return nil
}

func (r *CategoryRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.Category, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, storeErr(err, "category not found")
	}
	defer cur.Close(ctx)

	cats := []model.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, storeErr(err, "category not found")
	}
	return cats, nil
}
