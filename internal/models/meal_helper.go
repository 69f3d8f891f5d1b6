package models

import "time"

const DefaultHelperRole = "helper"

// MealHelper links a user to a dish in a helping capacity, distinct from the
// cook. Each (dish, user) pair may exist at most once.
type MealHelper struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DishID    uint      `gorm:"not null;uniqueIndex:uidx_helper_dish_user" json:"dish_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_helper_dish_user" json:"user_id"`
	Role      string    `gorm:"not null;default:helper" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
