package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Get("", handler.GetUsers)
	users.Post("", handler.CreateUser)

	dishes := api.Group("/dishes")
	dishes.Get("", handler.GetDishes)
	dishes.Post("", handler.CreateDish)
	dishes.Put("/:id", handler.UpdateDish)
	dishes.Delete("/:id", handler.DeleteDish)

	ingredients := api.Group("/ingredients")
	ingredients.Post("", handler.CreateIngredient)
	ingredients.Put("/:id", handler.UpdateIngredient)
	ingredients.Delete("/:id", handler.DeleteIngredient)

	helpers := api.Group("/meal-helpers")
	helpers.Post("", handler.CreateMealHelper)
	helpers.Delete("/:id", handler.DeleteMealHelper)

	api.Post("/reset", handler.ResetData)
}
