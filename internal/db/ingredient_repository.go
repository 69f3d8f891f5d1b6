package db

import (
	"github.com/terraincognita07/asado/internal/models"
	"gorm.io/gorm"
)

type IngredientRepository struct {
	database *gorm.DB
}

func NewIngredientRepository(database *gorm.DB) *IngredientRepository {
	return &IngredientRepository{database: database}
}

// ListForDish returns a dish's ingredients joined with the assignee's name.
// Unassigned ingredients keep a null assigned_user_name.
func (repo *IngredientRepository) ListForDish(dishID uint) ([]models.MenuIngredient, error) {
	ingredients := make([]models.MenuIngredient, 0)
	err := repo.database.
		Table("ingredients").
		Select("ingredients.*, users.name AS assigned_user_name").
		Joins("LEFT JOIN users ON users.id = ingredients.assigned_user_id").
		Where("ingredients.dish_id = ?", dishID).
		Scan(&ingredients).Error
	if err != nil {
		return nil, classifyWriteError(err)
	}
	return ingredients, nil
}

func (repo *IngredientRepository) FindByID(ingredientID uint) (models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := repo.database.First(&ingredient, ingredientID).Error; err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (repo *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return classifyWriteError(repo.database.Create(ingredient).Error)
}

func (repo *IngredientRepository) Update(ingredient *models.Ingredient) (int64, error) {
	result := repo.database.Model(&models.Ingredient{}).Where("id = ?", ingredient.ID).Updates(map[string]any{
		"name":             ingredient.Name,
		"quantity":         ingredient.Quantity,
		"assigned_user_id": ingredient.AssignedUserID,
	})
	return result.RowsAffected, classifyWriteError(result.Error)
}

func (repo *IngredientRepository) Delete(ingredientID uint) (int64, error) {
	result := repo.database.Delete(&models.Ingredient{}, ingredientID)
	return result.RowsAffected, classifyWriteError(result.Error)
}

func (repo *IngredientRepository) DeleteAll() error {
	return classifyWriteError(repo.database.Exec(`DELETE FROM ingredients`).Error)
}
