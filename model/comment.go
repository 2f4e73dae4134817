package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentUser struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

// Comment is a node in a reply tree. parentId and the parent's replies list are
// mutual inverses; root comments have a nil parentId.
type Comment struct {
	ID        bson.ObjectID   `json:"_id" bson:"_id,omitempty"`
	User      CommentUser     `json:"user" bson:"user"`
	Content   string          `json:"content" bson:"content"`
	Timestamp time.Time       `json:"timestamp" bson:"timestamp"`
	Approved  bool            `json:"approved" bson:"approved"`
	Lesson    string          `json:"lesson" bson:"lesson"`
	ParentID  *bson.ObjectID  `json:"parentId" bson:"parentId"`
	Replies   []bson.ObjectID `json:"replies" bson:"replies"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}
