package dto

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/model"
)

// CategoryInput is the create body. ParentCategory is a hex id; empty string
// or absence means a root category.
type CategoryInput struct {
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	ParentCategory  *string `json:"parentCategory"`
	Description     string  `json:"description"`
	MetaTitle       string  `json:"metaTitle"`
	MetaKeywords    string  `json:"metaKeywords"`
	MetaDescription string  `json:"metaDescription"`
	PositionOrder   int     `json:"positionOrder"`
	Status          string  `json:"status"`
	ThumbnailImage  string  `json:"thumbnailImage"`
}

// UpdateCategoryInput uses pointers so a field can be told apart from its
// zero value; nil means "leave unchanged". A ParentCategory pointing at an
// empty string detaches the category from its parent.
type UpdateCategoryInput struct {
	Name            *string `json:"name"`
	Slug            *string `json:"slug"`
	ParentCategory  *string `json:"parentCategory"`
	Description     *string `json:"description"`
	MetaTitle       *string `json:"metaTitle"`
	MetaKeywords    *string `json:"metaKeywords"`
	MetaDescription *string `json:"metaDescription"`
	PositionOrder   *int    `json:"positionOrder"`
	Status          *string `json:"status"`
	ThumbnailImage  *string `json:"thumbnailImage"`
}

// CategoryRef is the short form used when a category appears inside another
// document's response.
type CategoryRef struct {
	ID   bson.ObjectID `json:"_id"`
	Name string        `json:"name"`
	Slug string        `json:"slug"`
}

func NewCategoryRef(c model.Category) CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

// CategoryView is a category with its parent and children resolved to refs.
type CategoryView struct {
	model.Category
	ParentRef    *CategoryRef  `json:"parentRef,omitempty"`
	ChildrenRefs []CategoryRef `json:"childrenRefs,omitempty"`
}
