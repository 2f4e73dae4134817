package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/internal/apperr"
)

const (
	PostDraft     = "draft"
	PostScheduled = "scheduled"
	PostPublished = "published"
)

// Component kinds posts may embed. The union is closed: anything else is
// rejected at validation time.
const (
	ComponentImage      = "Image"
	ComponentCodeBlock  = "CodeBlock"
	ComponentTextEditor = "TextEditor"
)

type Component struct {
	Type  string `json:"type" bson:"type"`
	Props bson.M `json:"props" bson:"props"`
}

// Validate checks the component type and the required props for that type.
func (c Component) Validate() error {
	required := map[string][]string{
		ComponentImage:      {"url"},
		ComponentCodeBlock:  {"code"},
		ComponentTextEditor: {"content"},
	}
	keys, ok := required[c.Type]
	if !ok {
		return apperr.Newf(apperr.Validation, "unknown component type %q", c.Type)
	}
	for _, k := range keys {
		v, present := c.Props[k]
		if !present {
			return apperr.Newf(apperr.Validation, "component %s: missing prop %q", c.Type, k)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return apperr.Newf(apperr.Validation, "component %s: empty prop %q", c.Type, k)
		}
	}
	return nil
}

// DisplayedWithin projects a post's ancestor chain onto up to three named
// levels, leaf-deepest, the way the frontend consumes it.
type DisplayedWithin struct {
	Category       *bson.ObjectID `json:"category,omitempty" bson:"category,omitempty"`
	Subcategory    *bson.ObjectID `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Subsubcategory *bson.ObjectID `json:"subsubcategory,omitempty" bson:"subsubcategory,omitempty"`
}

type Post struct {
	ID               bson.ObjectID     `json:"_id" bson:"_id,omitempty"`
	Title            string            `json:"title" bson:"title"`
	Slug             string            `json:"slug" bson:"slug"`
	ShortDescription string            `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	LongDescription  string            `json:"longDescription,omitempty" bson:"longDescription,omitempty"`
	FeaturedImage    string            `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
	FeaturedImageAlt string            `json:"featuredImageAlt,omitempty" bson:"featuredImageAlt,omitempty"`
	BannerImage      string            `json:"bannerImage,omitempty" bson:"bannerImage,omitempty"`
	BannerImageAlt   string            `json:"bannerImageAlt,omitempty" bson:"bannerImageAlt,omitempty"`
	MetaTitle        string            `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription  string            `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	MetaKeywords     []string          `json:"metaKeywords,omitempty" bson:"metaKeywords,omitempty"`
	Author           string            `json:"author" bson:"author"`
	Components       []Component       `json:"components,omitempty" bson:"components,omitempty"`
	Category         bson.ObjectID     `json:"category" bson:"category"`
	CategoryPath     []bson.ObjectID   `json:"categoryPath" bson:"categoryPath"`
	DisplayedWithin  []DisplayedWithin `json:"displayedWithin,omitempty" bson:"displayedWithin,omitempty"`
	PlacementTags    []string          `json:"placementTags" bson:"placementTags"`
	Topic            *bson.ObjectID    `json:"topic" bson:"topic"`
	Status           string            `json:"status" bson:"status"`
	PublishDate      *time.Time        `json:"publishDate" bson:"publishDate"`
	Features         []string          `json:"features,omitempty" bson:"features,omitempty"`
	FullPathSlug     string            `json:"fullPathSlug" bson:"fullPathSlug"`
	UniqueIdentifier string            `json:"uniqueIdentifier" bson:"uniqueIdentifier"`
	CreatedAt        time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt" bson:"updatedAt"`
}
