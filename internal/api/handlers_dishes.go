package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/asado/internal/models"
	"gorm.io/gorm"
)

// GetDishes returns the aggregated menu: every dish with its cook's name,
// ingredients and helpers, ordered friday through sunday and breakfast
// through snack.
func (handler *Handler) GetDishes(c *fiber.Ctx) error {
	menu, err := handler.menuService.BuildMenu()
	if err != nil {
		return persistenceError(c, err, "failed to fetch dishes")
	}
	return c.JSON(menu)
}

func (handler *Handler) CreateDish(c *fiber.Ctx) error {
	payload := dishPayload{}
	if err := parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	dish := models.Dish{
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		CookUserID:  payload.CookUserID,
		Day:         payload.Day,
		Meal:        payload.Meal,
		CookingTime: payload.CookingTime,
	}
	if err := handler.repositories.Dishes.Create(&dish); err != nil {
		return persistenceError(c, err, "failed to create dish")
	}
	return c.Status(fiber.StatusCreated).JSON(dish)
}

func (handler *Handler) UpdateDish(c *fiber.Ctx) error {
	dishID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid dish id")
	}

	payload := dishPayload{}
	if err := parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	dish := models.Dish{
		ID:          dishID,
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		CookUserID:  payload.CookUserID,
		Day:         payload.Day,
		Meal:        payload.Meal,
		CookingTime: payload.CookingTime,
	}
	affected, err := handler.repositories.Dishes.Update(&dish)
	if err != nil {
		return persistenceError(c, err, "failed to update dish")
	}
	if affected == 0 {
		return apiError(c, fiber.StatusNotFound, "dish not found")
	}

	updated, err := handler.repositories.Dishes.FindByID(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "dish not found")
		}
		return persistenceError(c, err, "failed to fetch dish")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteDish(c *fiber.Ctx) error {
	dishID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid dish id")
	}

	affected, err := handler.repositories.Dishes.Delete(dishID)
	if err != nil {
		return persistenceError(c, err, "failed to delete dish")
	}
	if affected == 0 {
		return apiError(c, fiber.StatusNotFound, "dish not found")
	}
	return c.JSON(fiber.Map{"message": "Dish deleted successfully"})
}
