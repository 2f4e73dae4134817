package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/dto"
	"fliquecms/internal/repository"
	"fliquecms/internal/utils"
	"fliquecms/model"
)

type TagHandler struct {
	Repo *repository.TagRepository
}

// POST /tags
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var body model.Tag
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}
	if body.Slug == "" {
		body.Slug = utils.MakeSlug(body.Name, "")
	}
	now := time.Now().UTC()
	body.CreatedAt = now
	body.UpdatedAt = now

	tag, err := h.Repo.Insert(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.TagResponse{Success: true, Data: &tag})
}

// GET /tags
func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.Repo.FindAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TagListResponse{Success: true, Data: tags})
}

// GET /tags/:id
func (h *TagHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid tag id")
	}
	tag, err := h.Repo.FindByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TagResponse{Success: true, Data: tag})
}

// PUT /tags/:id
func (h *TagHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid tag id")
	}
	var body model.Tag
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Slug != "" {
		set["slug"] = utils.MakeSlug(body.Slug, "")
	}
	tag, err := h.Repo.Update(c.Context(), id, set)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TagResponse{Success: true, Data: tag})
}

// DELETE /tags/:id
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid tag id")
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TagResponse{Success: true, Message: "tag deleted"})
}
