package models

import "time"

const (
	DayFriday   = "friday"
	DaySaturday = "saturday"
	DaySunday   = "sunday"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// EventDays and MealSlots fix the display order of the menu. The order is
// categorical, not lexical: lunch comes before dinner even though "dinner"
// sorts first as a string.
var EventDays = []string{DayFriday, DaySaturday, DaySunday}

var MealSlots = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

var (
	dayRank  = rankTable(EventDays)
	mealRank = rankTable(MealSlots)
)

func rankTable(values []string) map[string]int {
	table := make(map[string]int, len(values))
	for index, value := range values {
		table[value] = index + 1
	}
	return table
}

func ValidDay(day string) bool {
	_, ok := dayRank[day]
	return ok
}

func ValidMeal(meal string) bool {
	_, ok := mealRank[meal]
	return ok
}

// DayRank returns the display rank of a day; unknown values sort last.
func DayRank(day string) int {
	if rank, ok := dayRank[day]; ok {
		return rank
	}
	return len(EventDays) + 1
}

// MealRank returns the display rank of a meal slot; unknown values sort last.
func MealRank(meal string) int {
	if rank, ok := mealRank[meal]; ok {
		return rank
	}
	return len(MealSlots) + 1
}

type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
	CookUserID  *uint     `json:"cook_user_id"`
	Day         string    `gorm:"not null" json:"day"`
	Meal        string    `gorm:"not null" json:"meal"`
	CookingTime *string   `json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at"`
}
