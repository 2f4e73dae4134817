package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"fliquecms/dto"
	"fliquecms/services"
)

type CommentHandler struct {
	Service *services.CommentService
}

// POST /comments
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateCommentInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	comment, err := h.Service.Create(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(comment)
}

// GET /comments?lesson=&approved=&search=. Root comments with populated threads.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	var approved *bool
	if v := c.Query("approved"); v != "" {
		b := v == "true"
		approved = &b
	}
	nodes, err := h.Service.List(c.Context(), c.Query("lesson"), approved, c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(nodes)
}

// GET /comments/:id. Returns one comment with its populated reply tree.
func (h *CommentHandler) Get(c *fiber.Ctx) error {
	node, err := h.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(node)
}

// PUT /comments/:id
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateCommentInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	comment, err := h.Service.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(comment)
}

// DELETE /comments/:id. Removes the comment and its whole reply subtree.
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Service.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "comment deleted", "deletedCount": deleted})
}

// POST /comments/bulk
func (h *CommentHandler) BulkAction(c *fiber.Ctx) error {
	var body dto.BulkActionInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	result, err := h.Service.BulkAction(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}
