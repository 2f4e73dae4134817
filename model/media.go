package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	MediaImage    = "image"
	MediaVideo    = "video"
	MediaDocument = "document"
	MediaOther    = "other"
)

type Media struct {
	ID           bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name         string        `json:"name" bson:"name"`
	OriginalName string        `json:"originalName" bson:"originalName"`
	URL          string        `json:"url" bson:"url"`
	Type         string        `json:"type" bson:"type"`
	Size         int64         `json:"size" bson:"size"`
	Alt          string        `json:"alt,omitempty" bson:"alt,omitempty"`
	Title        string        `json:"title,omitempty" bson:"title,omitempty"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	IsPublic     bool          `json:"isPublic" bson:"isPublic"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// FileType buckets a MIME type into the storage directory it is routed to.
func FileType(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaImage
	case strings.HasPrefix(mimeType, "video/"):
		return MediaVideo
	case strings.HasPrefix(mimeType, "application/pdf"), strings.HasPrefix(mimeType, "text/"):
		return MediaDocument
	default:
		return MediaOther
	}
}
