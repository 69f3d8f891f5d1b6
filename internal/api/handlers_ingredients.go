package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/asado/internal/models"
	"gorm.io/gorm"
)

func (handler *Handler) CreateIngredient(c *fiber.Ctx) error {
	payload := ingredientPayload{}
	if err := parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	ingredient := models.Ingredient{
		DishID:         payload.DishID,
		Name:           strings.TrimSpace(payload.Name),
		Quantity:       payload.Quantity,
		AssignedUserID: payload.AssignedUserID,
	}
	if err := handler.repositories.Ingredients.Create(&ingredient); err != nil {
		return persistenceError(c, err, "failed to create ingredient")
	}
	return c.Status(fiber.StatusCreated).JSON(ingredient)
}

func (handler *Handler) UpdateIngredient(c *fiber.Ctx) error {
	ingredientID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient id")
	}

	payload := ingredientUpdatePayload{}
	if err := parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	ingredient := models.Ingredient{
		ID:             ingredientID,
		Name:           strings.TrimSpace(payload.Name),
		Quantity:       payload.Quantity,
		AssignedUserID: payload.AssignedUserID,
	}
	affected, err := handler.repositories.Ingredients.Update(&ingredient)
	if err != nil {
		return persistenceError(c, err, "failed to update ingredient")
	}
	if affected == 0 {
		return apiError(c, fiber.StatusNotFound, "ingredient not found")
	}

	updated, err := handler.repositories.Ingredients.FindByID(ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "ingredient not found")
		}
		return persistenceError(c, err, "failed to fetch ingredient")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteIngredient(c *fiber.Ctx) error {
	ingredientID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid ingredient id")
	}

	affected, err := handler.repositories.Ingredients.Delete(ingredientID)
	if err != nil {
		return persistenceError(c, err, "failed to delete ingredient")
	}
	if affected == 0 {
		return apiError(c, fiber.StatusNotFound, "ingredient not found")
	}
	return c.JSON(fiber.Map{"message": "Ingredient deleted successfully"})
}
