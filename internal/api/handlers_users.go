package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/asado/internal/models"
)

func (handler *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.ListByName()
	if err != nil {
		return persistenceError(c, err, "failed to fetch users")
	}
	return c.JSON(users)
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	payload := userPayload{}
	if err := parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	user := models.User{Name: name}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return persistenceError(c, err, "failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
