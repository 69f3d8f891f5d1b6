package api

import (
	"github.com/terraincognita07/asado/internal/db"
	"github.com/terraincognita07/asado/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repositories *db.Repositories
	menuService  *services.MenuService
	resetService *services.ResetService
}

func NewHandler(database *gorm.DB) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		repositories: repositories,
		menuService: services.NewMenuService(
			repositories.Dishes,
			repositories.Ingredients,
			repositories.MealHelpers,
		),
		resetService: services.NewResetService(
			repositories.MealHelpers,
			repositories.Ingredients,
			repositories.Dishes,
			repositories.Users,
		),
	}
}
