package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/dto"
	"fliquecms/internal/repository"
	"fliquecms/model"
)

type AdHandler struct {
	Repo *repository.AdRepository
}

// POST /ads
func (h *AdHandler) Create(c *fiber.Ctx) error {
	var body model.Ad
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return fail(c, err)
	}
	body.CreatedAt = time.Now().UTC()

	ad, err := h.Repo.Insert(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(ad)
}

// GET /ads
func (h *AdHandler) List(c *fiber.Ctx) error {
	ads, err := h.Repo.FindAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(ads)
}

// GET /ads/:id
func (h *AdHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid ad id")
	}
	ad, err := h.Repo.FindByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(ad)
}

// PUT /ads/:id. Full replacement, so the document is re-validated whole.
func (h *AdHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid ad id")
	}
	var body model.Ad
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return fail(c, err)
	}

	ad, err := h.Repo.Update(c.Context(), id, body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(ad)
}

// DELETE /ads/:id
func (h *AdHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid ad id")
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ad deleted"})
}
