package dto

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/model"
)

// The per-entity response envelopes below match what the admin frontend
// consumes; they are intentionally not uniform across entities.

type TagResponse struct {
	Success bool       `json:"success"`
	Data    *model.Tag `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
}

type TagListResponse struct {
	Success bool        `json:"success"`
	Data    []model.Tag `json:"data"`
}

type AuthorResponse struct {
	Message string        `json:"message"`
	Author  *model.Author `json:"author,omitempty"`
}

type PlacementResponse struct {
	Message   string           `json:"message"`
	Placement *model.Placement `json:"Placement,omitempty"`
}

type WebStoryResponse struct {
	Status string        `json:"status"`
	Story  *WebStoryView `json:"story,omitempty"`
}

type WebStoryListResponse struct {
	Status  string         `json:"status"`
	Stories []WebStoryView `json:"stories"`
}

// WebStoryCategoryGroup is one category with the published stories under it.
type WebStoryCategoryGroup struct {
	ID      bson.ObjectID    `json:"_id"`
	Name    string           `json:"name"`
	Slug    string           `json:"slug"`
	Stories []model.WebStory `json:"stories"`
}

type WebStoryGroupedResponse struct {
	Status string                  `json:"status"`
	Data   []WebStoryCategoryGroup `json:"data"`
}

// WebStoryView resolves the story's category to a short ref.
type WebStoryView struct {
	model.WebStory
	CategoryRef *CategoryRef `json:"categoryRef,omitempty"`
}

type CreateWebStoryInput struct {
	Slug            string             `json:"slug"`
	Category        string             `json:"category"`
	MetaTitle       string             `json:"metaTitle"`
	MetaKeyword     string             `json:"metaKeyword"`
	MetaDescription string             `json:"metaDescription"`
	IsPublished     *bool              `json:"isPublished"`
	Stories         []model.StoryFrame `json:"stories"`
}

type UpdateWebStoryInput struct {
	Slug            *string             `json:"slug"`
	Category        *string             `json:"category"`
	MetaTitle       *string             `json:"metaTitle"`
	MetaKeyword     *string             `json:"metaKeyword"`
	MetaDescription *string             `json:"metaDescription"`
	IsPublished     *bool               `json:"isPublished"`
	Stories         *[]model.StoryFrame `json:"stories"`
}

type UpdateMediaInput struct {
	Alt         *string `json:"alt"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

type TopicInput struct {
	TopicName  string `json:"topicName"`
	CategoryID string `json:"categoryId"`
	Status     string `json:"status"`
}

// TopicView resolves the topic's category to a short ref.
type TopicView struct {
	model.Topic
	CategoryRef *CategoryRef `json:"categoryRef,omitempty"`
}
