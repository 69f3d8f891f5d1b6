package models

import "time"

// MenuDish is a dish as the menu view presents it: joined with its cook's
// display name and carrying its ingredients and helpers. A dish with no cook
// keeps a null cook_user_name.
type MenuDish struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	CookUserID   *uint            `json:"cook_user_id"`
	CookUserName *string          `json:"cook_user_name"`
	Day          string           `json:"day"`
	Meal         string           `json:"meal"`
	CookingTime  *string          `json:"cooking_time"`
	CreatedAt    time.Time        `json:"created_at"`
	Ingredients  []MenuIngredient `json:"ingredients" gorm:"-"`
	Helpers      []MenuHelper     `json:"helpers" gorm:"-"`
}

type MenuIngredient struct {
	ID               uint    `json:"id"`
	DishID           uint    `json:"dish_id"`
	Name             string  `json:"name"`
	Quantity         *string `json:"quantity"`
	AssignedUserID   *uint   `json:"assigned_user_id"`
	AssignedUserName *string `json:"assigned_user_name"`
}

// MenuHelper always carries a user name: helper rows whose user no longer
// exists are excluded from the menu view entirely.
type MenuHelper struct {
	ID       uint   `json:"id"`
	DishID   uint   `json:"dish_id"`
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	UserName string `json:"user_name"`
}
