package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Author struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
