package db

import (
	"errors"
	"testing"

	"github.com/terraincognita07/asado/internal/models"
)

func TestCreateDishRejectsUnknownDay(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database)

	dish := models.Dish{Name: "Stew", Day: "monday", Meal: models.MealDinner}
	err := repos.Dishes.Create(&dish)
	if !errors.Is(err, ErrCheckViolation) {
		t.Fatalf("expected ErrCheckViolation, got %v", err)
	}
}

func TestCreateDishRejectsUnknownMeal(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database)

	dish := models.Dish{Name: "Stew", Day: models.DayFriday, Meal: "brunch"}
	err := repos.Dishes.Create(&dish)
	if !errors.Is(err, ErrCheckViolation) {
		t.Fatalf("expected ErrCheckViolation, got %v", err)
	}
}

func TestCreateDishRejectsMissingCook(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database)

	missingUser := uint(999)
	dish := models.Dish{Name: "Stew", Day: models.DayFriday, Meal: models.MealDinner, CookUserID: &missingUser}
	err := repos.Dishes.Create(&dish)
	if !errors.Is(err, ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey, got %v", err)
	}
}

func TestDuplicateHelperPairIsConflict(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database)

	user := models.User{Name: "Alice"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	dish := models.Dish{Name: "Ribs", Day: models.DaySaturday, Meal: models.MealDinner}
	if err := repos.Dishes.Create(&dish); err != nil {
		t.Fatalf("create dish: %v", err)
	}

	first := models.MealHelper{DishID: dish.ID, UserID: user.ID, Role: models.DefaultHelperRole}
	if err := repos.MealHelpers.Create(&first); err != nil {
		t.Fatalf("create first helper: %v", err)
	}

	second := models.MealHelper{DishID: dish.ID, UserID: user.ID, Role: "grill master"}
	err := repos.MealHelpers.Create(&second)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for repeated (dish, user) pair, got %v", err)
	}
}

func TestCreateHelperRejectsMissingUser(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database)

	dish := models.Dish{Name: "Ribs", Day: models.DaySaturday, Meal: models.MealDinner}
	if err := repos.Dishes.Create(&dish); err != nil {
		t.Fatalf("create dish: %v", err)
	}

	helper := models.MealHelper{DishID: dish.ID, UserID: 999, Role: models.DefaultHelperRole}
	err := repos.MealHelpers.Create(&helper)
	if !errors.Is(err, ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey, got %v", err)
	}
}
