package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Dishes      *DishRepository
	Ingredients *IngredientRepository
	MealHelpers *MealHelperRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Dishes:      NewDishRepository(database),
		Ingredients: NewIngredientRepository(database),
		MealHelpers: NewMealHelperRepository(database),
	}
}
