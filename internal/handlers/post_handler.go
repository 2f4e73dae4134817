package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"fliquecms/dto"
	"fliquecms/services"
)

type PostHandler struct {
	Service *services.PostService
}

// POST /posts
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	view, err := h.Service.Create(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(view)
}

// GET /posts?status=&category=&topic=&includeDrafts=
func (h *PostHandler) List(c *fiber.Ctx) error {
	views, err := h.Service.List(c.Context(),
		c.Query("status"), c.Query("category"), c.Query("topic"), c.QueryBool("includeDrafts"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/:identifier. A 24-hex value is treated as an id, anything else as a slug.
// Drafts stay hidden unless includeDrafts is set.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	view, err := h.Service.Get(c.Context(), c.Params("identifier"), c.QueryBool("includeDrafts"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// PUT /posts/:id
func (h *PostHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdatePostInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	view, err := h.Service.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// DELETE /posts/:id
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "post deleted"})
}

// GET /posts/post/*. Resolves a post by full category path plus slug,
// e.g. /posts/post/tech/ai/hello-world-a1b2c3d4.
func (h *PostHandler) GetByPath(c *fiber.Ctx) error {
	view, err := h.Service.ResolveByPath(c.Context(), c.Params("*"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// GET /posts/category/:categorySlug and /posts/category/:categorySlug/:subcategorySlug
func (h *PostHandler) ByCategory(c *fiber.Ctx) error {
	views, err := h.Service.ByCategory(c.Context(), c.Params("categorySlug"), c.Params("subcategorySlug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/category/:categorySlug/topics and
// /posts/category/:categorySlug/:subcategorySlug/topics
func (h *PostHandler) TopicsByCategory(c *fiber.Ctx) error {
	views, err := h.Service.TopicsByCategory(c.Context(), c.Params("categorySlug"), c.Params("subcategorySlug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /posts/category/:categorySlug/topic/:topicId and
// /posts/category/:categorySlug/:subcategorySlug/topic/:topicId
func (h *PostHandler) ByCategoryAndTopic(c *fiber.Ctx) error {
	views, err := h.Service.ByCategoryAndTopic(c.Context(),
		c.Params("categorySlug"), c.Params("subcategorySlug"), c.Params("topicId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /category-all-blogs/:categorySlug
func (h *PostHandler) AllByCategory(c *fiber.Ctx) error {
	out, err := h.Service.AllByCategory(c.Context(), c.Params("categorySlug"), c.QueryBool("includeDrafts"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GET /category-hierarchy/*
func (h *PostHandler) Hierarchy(c *fiber.Ctx) error {
	node, err := h.Service.Hierarchy(c.Context(), c.Params("*"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(node)
}
