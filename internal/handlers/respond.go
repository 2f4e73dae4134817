// Package handlers holds the fiber handlers. Each handler struct carries the
// service or repository it fronts; errors from below are mapped onto HTTP
// statuses through their apperr kind.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fliquecms/dto"
	"fliquecms/internal/apperr"
)

func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperr.StatusCode(err)).JSON(dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
