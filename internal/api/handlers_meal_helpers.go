package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/asado/internal/models"
)

func (handler *Handler) CreateMealHelper(c *fiber.Ctx) error {
	payload := mealHelperPayload{}
	if err := parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	role := strings.TrimSpace(payload.Role)
	if role == "" {
		role = models.DefaultHelperRole
	}

	helper := models.MealHelper{
		DishID: payload.DishID,
		UserID: payload.UserID,
		Role:   role,
	}
	if err := handler.repositories.MealHelpers.Create(&helper); err != nil {
		return persistenceError(c, err, "failed to add helper")
	}
	return c.Status(fiber.StatusCreated).JSON(helper)
}

func (handler *Handler) DeleteMealHelper(c *fiber.Ctx) error {
	helperID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid helper id")
	}

	affected, err := handler.repositories.MealHelpers.Delete(helperID)
	if err != nil {
		return persistenceError(c, err, "failed to remove helper")
	}
	if affected == 0 {
		return apiError(c, fiber.StatusNotFound, "helper not found")
	}
	return c.JSON(fiber.Map{"message": "Helper removed successfully"})
}
