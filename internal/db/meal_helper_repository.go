package db

import (
	"github.com/terraincognita07/asado/internal/models"
	"gorm.io/gorm"
)

type MealHelperRepository struct {
	database *gorm.DB
}

func NewMealHelperRepository(database *gorm.DB) *MealHelperRepository {
	return &MealHelperRepository{database: database}
}

// ListForDish returns a dish's helpers joined with the helper's name. The
// join is required: a helper row whose user no longer exists is excluded.
func (repo *MealHelperRepository) ListForDish(dishID uint) ([]models.MenuHelper, error) {
	helpers := make([]models.MenuHelper, 0)
	err := repo.database.
		Table("meal_helpers").
		Select("meal_helpers.*, users.name AS user_name").
		Joins("JOIN users ON users.id = meal_helpers.user_id").
		Where("meal_helpers.dish_id = ?", dishID).
		Scan(&helpers).Error
	if err != nil {
		return nil, classifyWriteError(err)
	}
	return helpers, nil
}

func (repo *MealHelperRepository) Create(helper *models.MealHelper) error {
	return classifyWriteError(repo.database.Create(helper).Error)
}

func (repo *MealHelperRepository) Delete(helperID uint) (int64, error) {
	result := repo.database.Delete(&models.MealHelper{}, helperID)
	return result.RowsAffected, classifyWriteError(result.Error)
}

func (repo *MealHelperRepository) DeleteAll() error {
	return classifyWriteError(repo.database.Exec(`DELETE FROM meal_helpers`).Error)
}
