package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"fliquecms/dto"
	"fliquecms/model"
	"fliquecms/services"
)

type WebStoryHandler struct {
	Service *services.WebStoryService
}

// POST /web-stories
func (h *WebStoryHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateWebStoryInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	view, err := h.Service.Create(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.WebStoryResponse{Status: "success", Story: view})
}

// GET /web-stories
func (h *WebStoryHandler) List(c *fiber.Ctx) error {
	views, err := h.Service.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.WebStoryListResponse{Status: "success", Stories: views})
}

// GET /web-stories/by-category. Published stories bucketed under their categories.
func (h *WebStoryHandler) ByCategory(c *fiber.Ctx) error {
	groups, err := h.Service.ByCategory(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.WebStoryGroupedResponse{Status: "success", Data: groups})
}

// GET /web-stories/:categorySlug/:slug
func (h *WebStoryHandler) GetByPath(c *fiber.Ctx) error {
	view, err := h.Service.GetByPath(c.Context(), c.Params("categorySlug"), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.WebStoryResponse{Status: "success", Story: view})
}

// GET /web-stories/:identifier. A 24-hex value is treated as an id, anything else as a slug.
func (h *WebStoryHandler) Get(c *fiber.Ctx) error {
	view, err := h.Service.Get(c.Context(), c.Params("identifier"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.WebStoryResponse{Status: "success", Story: view})
}

// PUT /web-stories/:id
func (h *WebStoryHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateWebStoryInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	view, err := h.Service.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.WebStoryResponse{Status: "success", Story: view})
}

// DELETE /web-stories/:id
func (h *WebStoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "web story deleted"})
}

// POST /web-story-categories
func (h *WebStoryHandler) CreateCategory(c *fiber.Ctx) error {
	var body model.WebStoryCategory
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	category, err := h.Service.CreateCategory(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(category)
}

// GET /web-story-categories
func (h *WebStoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Service.ListCategories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// GET /web-story-categories/:identifier. A 24-hex value is treated as an id,
// anything else as a slug.
func (h *WebStoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.Service.ResolveCategory(c.Context(), c.Params("identifier"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(category)
}

// PUT /web-story-categories/:id
func (h *WebStoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var body model.WebStoryCategory
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	category, err := h.Service.UpdateCategory(c.Context(), c.Params("id"), body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(category)
}

// DELETE /web-story-categories/:id
func (h *WebStoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.Service.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "web story category deleted"})
}
