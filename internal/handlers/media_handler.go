package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"fliquecms/dto"
	"fliquecms/services"
)

type MediaHandler struct {
	Service *services.MediaService
}

// POST /upload (multipart/form-data, field "file")
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "could not read upload")
	}
	defer src.Close()

	media, err := h.Service.Upload(c.Context(), services.UploadInput{
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Alt:          c.FormValue("alt"),
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		IsPublic:     c.FormValue("isPublic") != "false",
		Body:         src,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(media)
}

// GET /upload
func (h *MediaHandler) List(c *fiber.Ctx) error {
	media, err := h.Service.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(media)
}

// GET /upload/:id
func (h *MediaHandler) Get(c *fiber.Ctx) error {
	media, err := h.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(media)
}

// PUT /upload/:id. Metadata only; the stored file is immutable.
func (h *MediaHandler) Update(c *fiber.Ctx) error {
	var body dto.UpdateMediaInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	media, err := h.Service.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(media)
}

// DELETE /upload/:id. Removes the record and the file on disk.
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "media deleted"})
}
