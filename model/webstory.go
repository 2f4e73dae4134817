package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type StoryFrame struct {
	Title     string    `json:"title" bson:"title"`
	ShortDesc string    `json:"shortDesc" bson:"shortDesc"`
	Date      time.Time `json:"date" bson:"date"`
	Author    string    `json:"author,omitempty" bson:"author,omitempty"`
	Credit    string    `json:"credit,omitempty" bson:"credit,omitempty"`
	MediaURL  string    `json:"mediaUrl" bson:"mediaUrl"`
	MediaType string    `json:"mediaType" bson:"mediaType"`
}

// WebStory lives in its own category namespace (web_story_categories), which is
// flat, so fullPath is always categorySlug/slug.
type WebStory struct {
	ID              bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Slug            string        `json:"slug" bson:"slug"`
	FullPath        string        `json:"fullPath" bson:"fullPath"`
	Category        bson.ObjectID `json:"category" bson:"category"`
	MetaTitle       string        `json:"metaTitle" bson:"metaTitle"`
	MetaKeyword     string        `json:"metaKeyword,omitempty" bson:"metaKeyword,omitempty"`
	MetaDescription string        `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	IsPublished     bool          `json:"isPublished" bson:"isPublished"`
	Stories         []StoryFrame  `json:"stories" bson:"stories"`
	CreatedAt       time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type WebStoryCategory struct {
	ID             bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string        `json:"name" bson:"name"`
	Slug           string        `json:"slug" bson:"slug"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	ThumbnailImage string        `json:"thumbnailImage,omitempty" bson:"thumbnailImage,omitempty"`
	Status         string        `json:"status" bson:"status"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updatedAt"`
}
