package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fliquecms/model"
)

type PlacementRepository struct {
	col *mongo.Collection
}

func NewPlacementRepository(db *mongo.Database) *PlacementRepository {
	return &PlacementRepository{col: db.Collection("placements")}
}

func (r *PlacementRepository) Insert(ctx context.Context, p model.Placement) (model.Placement, error) {
	p.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return model.Placement{}, storeErr(err, "placement not found")
	}
	return p, nil
}

func (r *PlacementRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Placement, error) {
	var p model.Placement
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, storeErr(err, "placement not found")
	}
	return &p, nil
}

func (r *PlacementRepository) FindAll(ctx context.Context) ([]model.Placement, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err, "placement not found")
	}
	defer cur.Close(ctx)

	placements := []model.Placement{}
	if err := cur.All(ctx, &placements); err != nil {
		return nil, storeErr(err, "placement not found")
	}
	return placements, nil
}

func (r *PlacementRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Placement, error) {
	var p model.Placement
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return nil, storeErr(err, "placement not found")
	}
	return &p, nil
}

func (r *PlacementRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(err, "placement not found")
	}
	if res.DeletedCount == 0 {
		return storeErr(mongo.ErrNoDocuments, "placement not found")
	}
	return nil
}
