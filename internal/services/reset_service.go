package services

import "fmt"

type TableCleaner interface {
	DeleteAll() error
}

type ResetService struct {
	helpers     TableCleaner
	ingredients TableCleaner
	dishes      TableCleaner
	users       TableCleaner
}

func NewResetService(helpers, ingredients, dishes, users TableCleaner) *ResetService {
	return &ResetService{
		helpers:     helpers,
		ingredients: ingredients,
		dishes:      dishes,
		users:       users,
	}
}

// ClearAll empties every table. Children go first so the foreign keys on
// dishes and users never block the later deletes.
func (service *ResetService) ClearAll() error {
	if err := service.helpers.DeleteAll(); err != nil {
		return fmt.Errorf("clear meal helpers: %w", err)
	}
	if err := service.ingredients.DeleteAll(); err != nil {
		return fmt.Errorf("clear ingredients: %w", err)
	}
	if err := service.dishes.DeleteAll(); err != nil {
		return fmt.Errorf("clear dishes: %w", err)
	}
	if err := service.users.DeleteAll(); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}
