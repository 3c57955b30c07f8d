package mealdb

import (
	"fmt"
	"strings"

	"github.com/AceRider75/moodfood/internal/core/domain"
)

// maxIngredients is the number of numbered ingredient slots a meal carries.
const maxIngredients = 20

func mapMealToDomain(m meal) domain.Recipe {
	return domain.Recipe{
		ID:           m.str("idMeal"),
		Title:        m.str("strMeal"),
		ImageURL:     m.str("strMealThumb"),
		Ingredients:  ingredients(m),
		Instructions: strings.TrimSpace(m.str("strInstructions")),
		SourceURL:    strings.TrimSpace(m.str("strSource")),
	}
}

// ingredients flattens the numbered slots into an ordered list, skipping
// slots whose ingredient is blank.
func ingredients(m meal) []domain.Ingredient {
	var out []domain.Ingredient
	for i := 1; i <= maxIngredients; i++ {
		name := strings.TrimSpace(m.str(fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		out = append(out, domain.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(m.str(fmt.Sprintf("strMeasure%d", i))),
		})
	}
	return out
}
