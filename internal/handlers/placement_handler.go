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

type PlacementHandler struct {
	Repo *repository.PlacementRepository
}

// POST /placement
func (h *PlacementHandler) Create(c *fiber.Ctx) error {
	var body model.Placement
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PlacementName == "" {
		return badRequest(c, "placementName is required")
	}
	now := time.Now().UTC()
	body.CreatedAt = now
	body.UpdatedAt = now

	placement, err := h.Repo.Insert(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.PlacementResponse{Message: "placement created", Placement: &placement})
}

// GET /placement
func (h *PlacementHandler) List(c *fiber.Ctx) error {
	placements, err := h.Repo.FindAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(placements)
}

// GET /placement/:id
func (h *PlacementHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid placement id")
	}
	placement, err := h.Repo.FindByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(placement)
}

// PUT /placement/:id
func (h *PlacementHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid placement id")
	}
	var body model.Placement
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PlacementName == "" {
		return badRequest(c, "placementName is required")
	}

	placement, err := h.Repo.Update(c.Context(), id, bson.M{
		"placementName": body.PlacementName,
		"updatedAt":     time.Now().UTC(),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PlacementResponse{Message: "placement updated", Placement: placement})
}

// DELETE /placement/:id
func (h *PlacementHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid placement id")
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PlacementResponse{Message: "placement deleted"})
}
