package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Category is a node in the category tree. parentCategory and children are kept
// as mutual inverses: C appears in P.children exactly when C.parentCategory == P.
type Category struct {
	ID              bson.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name            string          `json:"name" bson:"name"`
	Slug            string          `json:"slug" bson:"slug"`
	ParentCategory  *bson.ObjectID  `json:"parentCategory" bson:"parentCategory"`
	Children        []bson.ObjectID `json:"children" bson:"children"`
	Description     string          `json:"description,omitempty" bson:"description,omitempty"`
	MetaTitle       string          `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaKeywords    string          `json:"metaKeywords,omitempty" bson:"metaKeywords,omitempty"`
	MetaDescription string          `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	PositionOrder   int             `json:"positionOrder" bson:"positionOrder"`
	Status          string          `json:"status" bson:"status"`
	ThumbnailImage  string          `json:"thumbnailImage,omitempty" bson:"thumbnailImage,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}
