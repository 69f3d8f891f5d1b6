package models

import "time"

type Ingredient struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DishID         uint      `gorm:"not null;index" json:"dish_id"`
	Name           string    `gorm:"not null" json:"name"`
	Quantity       *string   `json:"quantity"`
	AssignedUserID *uint     `json:"assigned_user_id"`
	CreatedAt      time.Time `json:"created_at"`
}
