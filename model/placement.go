package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Placement struct {
	ID            bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	PlacementName string        `json:"placementName" bson:"placementName"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}
