package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"fliquecms/dto"
	"fliquecms/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

// POST /categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var body dto.CategoryInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	view, err := h.Service.Create(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(view)
}

// GET /categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	views, err := h.Service.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /categories/filter?status=active&sortByOrder=true
func (h *CategoryHandler) Filter(c *fiber.Ctx) error {
	views, err := h.Service.Filter(c.Context(), c.Query("status"), c.QueryBool("sortByOrder"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

// GET /categories/by-slug/:slug
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	view, err := h.Service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// GET /categories/:identifier. A 24-hex value is treated as an id, anything else as a slug.
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	view, err := h.Service.Resolve(c.Context(), c.Params("identifier"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// PUT /categories/:id. Partial: omitted fields keep their stored value.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateCategoryInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	view, err := h.Service.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// DELETE /categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "category deleted"})
}
