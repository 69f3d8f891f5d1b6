package api

type userPayload struct {
	Name string `json:"name" validate:"required"`
}

type dishPayload struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	CookUserID  *uint   `json:"cook_user_id"`
	Day         string  `json:"day" validate:"required,oneof=friday saturday sunday"`
	Meal        string  `json:"meal" validate:"required,oneof=breakfast lunch dinner snack"`
	CookingTime *string `json:"cooking_time"`
}

type ingredientPayload struct {
	DishID         uint    `json:"dish_id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Quantity       *string `json:"quantity"`
	AssignedUserID *uint   `json:"assigned_user_id"`
}

// ingredientUpdatePayload omits dish_id: an ingredient never moves to
// another dish.
type ingredientUpdatePayload struct {
	Name           string  `json:"name" validate:"required"`
	Quantity       *string `json:"quantity"`
	AssignedUserID *uint   `json:"assigned_user_id"`
}

type mealHelperPayload struct {
	DishID uint   `json:"dish_id" validate:"required"`
	UserID uint   `json:"user_id" validate:"required"`
	Role   string `json:"role"`
}
