package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Topic is a flat tag scoped to one category.
type Topic struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	TopicName string        `json:"topicName" bson:"topicName"`
	Category  bson.ObjectID `json:"category" bson:"category"`
	Status    string        `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
