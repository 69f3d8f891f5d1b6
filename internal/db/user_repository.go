package db

import (
	"github.com/terraincognita07/asado/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) ListByName() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("name").Find(&users).Error; err != nil {
		return nil, classifyWriteError(err)
	}
	return users, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return classifyWriteError(repo.database.Create(user).Error)
}

func (repo *UserRepository) DeleteAll() error {
	return classifyWriteError(repo.database.Exec(`DELETE FROM users`).Error)
}
