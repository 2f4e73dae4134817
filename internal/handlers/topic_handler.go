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

type TopicHandler struct {
	Topics     *repository.TopicRepository
	Categories *repository.CategoryRepository
}

// POST /topics
func (h *TopicHandler) Create(c *fiber.Ctx) error {
	var body dto.TopicInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.TopicName == "" {
		return badRequest(c, "topicName is required")
	}
	categoryID, err := bson.ObjectIDFromHex(body.CategoryID)
	if err != nil {
		return badRequest(c, "invalid categoryId")
	}
	if _, err := h.Categories.FindByID(c.Context(), categoryID); err != nil {
		return fail(c, err)
	}

	status := body.Status
	if status == "" {
		status = model.StatusActive
	}
	now := time.Now().UTC()
	topic, err := h.Topics.Insert(c.Context(), model.Topic{
		TopicName: body.TopicName,
		Category:  categoryID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(topic)
}

// GET /topics
func (h *TopicHandler) List(c *fiber.Ctx) error {
	topics, err := h.Topics.FindAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(topics)
}

// GET /topics/category/:categoryId
func (h *TopicHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID, err := bson.ObjectIDFromHex(c.Params("categoryId"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}
	topics, err := h.Topics.FindByCategory(c.Context(), categoryID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(topics)
}

// GET /topics/:id
func (h *TopicHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid topic id")
	}
	topic, err := h.Topics.FindByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(topic)
}

// PUT /topics/:id
func (h *TopicHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid topic id")
	}
	var body dto.TopicInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if body.TopicName != "" {
		set["topicName"] = body.TopicName
	}
	if body.Status != "" {
		set["status"] = body.Status
	}
	if body.CategoryID != "" {
		categoryID, err := bson.ObjectIDFromHex(body.CategoryID)
		if err != nil {
			return badRequest(c, "invalid categoryId")
		}
		if _, err := h.Categories.FindByID(c.Context(), categoryID); err != nil {
			return fail(c, err)
		}
		set["category"] = categoryID
	}

	topic, err := h.Topics.Update(c.Context(), id, set)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(topic)
}

// DELETE /topics/:id
func (h *TopicHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid topic id")
	}
	if err := h.Topics.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "topic deleted"})
}
