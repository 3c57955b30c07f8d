package mealdb

// mealsResponse is the envelope for random.php and lookup.php. Meals is null
// when nothing matched.
type mealsResponse struct {
	Meals []meal `json:"meals"`
}

// filterResponse is the envelope for filter.php, which returns summaries only.
type filterResponse struct {
	Meals []mealSummary `json:"meals"`
}

type mealSummary struct {
	ID    string `json:"idMeal"`
	Name  string `json:"strMeal"`
	Thumb string `json:"strMealThumb"`
}

// meal keeps every field as a nullable string. The numbered
// strIngredientN/strMeasureN pairs are only reachable by key.
type meal map[string]*string

func (m meal) str(key string) string {
	if v, ok := m[key]; ok && v != nil {
		return *v
	}
	return ""
}
