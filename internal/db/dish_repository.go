package db

import (
	"github.com/terraincognita07/asado/internal/models"
	"gorm.io/gorm"
)

type DishRepository struct {
	database *gorm.DB
}

func NewDishRepository(database *gorm.DB) *DishRepository {
	return &DishRepository{database: database}
}

// ListWithCooks returns every dish joined with its cook's name. Dishes with
// no cook, or a cook id pointing at a vanished user, come back with a null
// cook_user_name.
func (repo *DishRepository) ListWithCooks() ([]models.MenuDish, error) {
	dishes := make([]models.MenuDish, 0)
	err := repo.database.
		Table("dishes").
		Select("dishes.*, users.name AS cook_user_name").
		Joins("LEFT JOIN users ON users.id = dishes.cook_user_id").
		Scan(&dishes).Error
	if err != nil {
		return nil, classifyWriteError(err)
	}
	return dishes, nil
}

func (repo *DishRepository) FindByID(dishID uint) (models.Dish, error) {
	var dish models.Dish
	if err := repo.database.First(&dish, dishID).Error; err != nil {
		return models.Dish{}, err
	}
	return dish, nil
}

func (repo *DishRepository) Create(dish *models.Dish) error {
	return classifyWriteError(repo.database.Create(dish).Error)
}

// Update replaces every editable column. A map keeps optional columns
// writable to NULL, which a struct update would silently skip.
func (repo *DishRepository) Update(dish *models.Dish) (int64, error) {
	result := repo.database.Model(&models.Dish{}).Where("id = ?", dish.ID).Updates(map[string]any{
		"name":         dish.Name,
		"description":  dish.Description,
		"cook_user_id": dish.CookUserID,
		"day":          dish.Day,
		"meal":         dish.Meal,
		"cooking_time": dish.CookingTime,
	})
	return result.RowsAffected, classifyWriteError(result.Error)
}

// Delete removes the dish; the schema cascades to its ingredients and
// meal helpers.
func (repo *DishRepository) Delete(dishID uint) (int64, error) {
	result := repo.database.Delete(&models.Dish{}, dishID)
	return result.RowsAffected, classifyWriteError(result.Error)
}

func (repo *DishRepository) DeleteAll() error {
	return classifyWriteError(repo.database.Exec(`DELETE FROM dishes`).Error)
}
