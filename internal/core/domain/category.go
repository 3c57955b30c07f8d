package domain

import "strings"

// Categories used by category-filter upstreams.
const (
	CategoryVegetarian = "Vegetarian"
	CategoryVegan      = "Vegan"
)

// MoodCategories maps each mood to the categories it favors.
var MoodCategories = map[Mood][]string{
	MoodHappy:       {"Dessert", "Seafood", "Pasta"},
	MoodSad:         {"Beef", "Chicken", "Pasta", "Vegetarian", "Dessert"},
	MoodAngry:       {"Side", "Chicken", "Beef", "Pork", "Miscellaneous"},
	MoodAdventurous: {"Side", "Miscellaneous", "Lamb", "Goat", "Seafood"},
	MoodStressed:    {"Starter", "Vegan", "Breakfast", "Vegetarian"},
	MoodChill:       {"Pasta", "Chicken", "Vegetarian", "Pork", "Breakfast"},
}

// IsVegetarianCategory reports whether every recipe in the category is vegetarian.
func IsVegetarianCategory(category string) bool {
	return strings.EqualFold(category, CategoryVegetarian) || strings.EqualFold(category, CategoryVegan)
}
