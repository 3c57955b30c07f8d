package spoonacular

import (
	"strconv"
	"strings"

	"github.com/AceRider75/moodfood/internal/core/domain"
)

func mapRecipeToDomain(r recipeInfo) domain.Recipe {
	return domain.Recipe{
		ID:           strconv.Itoa(r.ID),
		Title:        r.Title,
		ImageURL:     r.Image,
		Ingredients:  mapIngredients(r.ExtendedIngredients),
		Instructions: instructions(r),
		Summary:      r.Summary,
		SourceURL:    r.SourceURL,
		Nutrition:    mapNutrition(r.Nutrition),
	}
}

func mapIngredients(in []extendedIngredient) []domain.Ingredient {
	var out []domain.Ingredient
	for _, ing := range in {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		out = append(out, domain.Ingredient{Name: name, Measure: measure(ing)})
	}
	return out
}

func measure(ing extendedIngredient) string {
	if ing.Amount <= 0 {
		return ""
	}
	amount := strconv.FormatFloat(ing.Amount, 'f', -1, 64)
	return strings.TrimSpace(amount + " " + ing.Unit)
}

// instructions prefers the prose field and falls back to numbered steps.
func instructions(r recipeInfo) string {
	if s := strings.TrimSpace(r.Instructions); s != "" {
		return s
	}
	var steps []string
	for _, block := range r.AnalyzedInstructions {
		for _, st := range block.Steps {
			if s := strings.TrimSpace(st.Step); s != "" {
				steps = append(steps, strconv.Itoa(st.Number)+". "+s)
			}
		}
	}
	return strings.Join(steps, "\n")
}

// mapNutrition picks Calories and Fat out of the nutrients array. Absent
// entries stay nil so the renderer can show them as unknown.
func mapNutrition(n *nutrition) domain.Nutrition {
	var out domain.Nutrition
	if n == nil {
		return out
	}
	for _, nu := range n.Nutrients {
		amount := nu.Amount
		switch strings.ToLower(nu.Name) {
		case "calories":
			if out.Calories == nil {
				out.Calories = &amount
			}
		case "fat":
			if out.FatGrams == nil {
				out.FatGrams = &amount
			}
		}
	}
	return out
}
