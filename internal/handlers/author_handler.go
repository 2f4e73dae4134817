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

type AuthorHandler struct {
	Repo *repository.AuthorRepository
}

// POST /author
func (h *AuthorHandler) Create(c *fiber.Ctx) error {
	var body model.Author
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}
	now := time.Now().UTC()
	body.CreatedAt = now
	body.UpdatedAt = now

	author, err := h.Repo.Insert(c.Context(), body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.AuthorResponse{Message: "author created", Author: &author})
}

// GET /author
func (h *AuthorHandler) List(c *fiber.Ctx) error {
	authors, err := h.Repo.FindAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(authors)
}

// GET /author/:id
func (h *AuthorHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid author id")
	}
	author, err := h.Repo.FindByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(author)
}

// PUT /author/:id
func (h *AuthorHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid author id")
	}
	var body model.Author
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	author, err := h.Repo.Update(c.Context(), id, bson.M{
		"name":      body.Name,
		"updatedAt": time.Now().UTC(),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AuthorResponse{Message: "author updated", Author: author})
}

// DELETE /author/:id
func (h *AuthorHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid author id")
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AuthorResponse{Message: "author deleted"})
}
