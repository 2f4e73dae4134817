package dto

import "fliquecms/model"

type CreateCommentInput struct {
	User     model.CommentUser `json:"user"`
	Content  string            `json:"content"`
	Lesson   string            `json:"lesson"`
	ParentID *string           `json:"parentId"`
}

type UpdateCommentInput struct {
	Content  *string `json:"content"`
	Approved *bool   `json:"approved"`
}

// CommentNode is a comment with its replies materialized as nested nodes.
// The outer Replies field shadows the id list on the embedded document.
type CommentNode struct {
	model.Comment
	Replies []*CommentNode `json:"replies"`
}

type BulkActionInput struct {
	Action string   `json:"action"`
	IDs    []string `json:"ids"`
}

// BulkActionResult reports per-id failures without aborting the batch.
type BulkActionResult struct {
	Message  string         `json:"message"`
	Failed   []string       `json:"failed,omitempty"`
	Comments []*CommentNode `json:"comments"`
}
