package services

import (
	"fmt"
	"sort"

	"github.com/terraincognita07/asado/internal/models"
	"golang.org/x/sync/errgroup"
)

// menuFetchConcurrency bounds the per-dish fan-out so a large menu cannot
// drain the connection pool.
const menuFetchConcurrency = 4

type MenuDishRepository interface {
	ListWithCooks() ([]models.MenuDish, error)
}

type MenuIngredientRepository interface {
	ListForDish(dishID uint) ([]models.MenuIngredient, error)
}

type MenuHelperRepository interface {
	ListForDish(dishID uint) ([]models.MenuHelper, error)
}

type MenuService struct {
	dishes      MenuDishRepository
	ingredients MenuIngredientRepository
	helpers     MenuHelperRepository
}

func NewMenuService(dishes MenuDishRepository, ingredients MenuIngredientRepository, helpers MenuHelperRepository) *MenuService {
	return &MenuService{
		dishes:      dishes,
		ingredients: ingredients,
		helpers:     helpers,
	}
}

// BuildMenu assembles the full menu view: every dish with its cook's name,
// its ingredients and its helpers, ordered by day then meal slot. Per-dish
// fetches run concurrently; each writes into its own slot, so the sorted
// order survives any completion order. Any failure aborts the whole build —
// there is no partial menu.
func (service *MenuService) BuildMenu() ([]models.MenuDish, error) {
	dishes, err := service.dishes.ListWithCooks()
	if err != nil {
		return nil, fmt.Errorf("fetch dishes: %w", err)
	}

	SortMenu(dishes)

	var group errgroup.Group
	group.SetLimit(menuFetchConcurrency)
	for index := range dishes {
		dish := &dishes[index]
		group.Go(func() error {
			ingredients, err := service.ingredients.ListForDish(dish.ID)
			if err != nil {
				return fmt.Errorf("fetch ingredients for dish %d: %w", dish.ID, err)
			}
			helpers, err := service.helpers.ListForDish(dish.ID)
			if err != nil {
				return fmt.Errorf("fetch helpers for dish %d: %w", dish.ID, err)
			}
			dish.Ingredients = ingredients
			dish.Helpers = helpers
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return dishes, nil
}

// SortMenu orders dishes by the fixed day rank, then the fixed meal rank.
// The sort is stable, so dishes sharing a slot keep their relative order.
func SortMenu(dishes []models.MenuDish) {
	sort.SliceStable(dishes, func(i, j int) bool {
		dayI, dayJ := models.DayRank(dishes[i].Day), models.DayRank(dishes[j].Day)
		if dayI != dayJ {
			return dayI < dayJ
		}
		return models.MealRank(dishes[i].Meal) < models.MealRank(dishes[j].Meal)
	})
}
