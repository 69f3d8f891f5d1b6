package api

import "github.com/gofiber/fiber/v2"

// ResetData clears every table, children before parents.
func (handler *Handler) ResetData(c *fiber.Ctx) error {
	if err := handler.resetService.ClearAll(); err != nil {
		return persistenceError(c, err, "failed to reset data")
	}
	return c.JSON(fiber.Map{"message": "All data cleared successfully"})
}
