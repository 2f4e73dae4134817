package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Tag struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Slug      string        `json:"slug" bson:"slug"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
