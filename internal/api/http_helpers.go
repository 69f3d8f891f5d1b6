package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/asado/internal/db"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// persistenceError maps classified persistence failures onto HTTP statuses.
// The response body keeps the plain {"error": message} shape throughout.
func persistenceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, db.ErrDuplicate):
		return apiError(c, fiber.StatusConflict, "duplicate entry")
	case errors.Is(err, db.ErrForeignKey):
		return apiError(c, fiber.StatusUnprocessableEntity, "referenced record does not exist")
	case errors.Is(err, db.ErrCheckViolation):
		return apiError(c, fiber.StatusBadRequest, "value not allowed")
	case errors.Is(err, db.ErrUnavailable):
		return apiError(c, fiber.StatusServiceUnavailable, "database unavailable")
	}
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
