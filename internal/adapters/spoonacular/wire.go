package spoonacular

// searchResponse is the complexSearch envelope.
type searchResponse struct {
	Results      []recipeInfo `json:"results"`
	Offset       int          `json:"offset"`
	Number       int          `json:"number"`
	TotalResults int          `json:"totalResults"`
}

// recipeInfo covers both complexSearch results (with addRecipeInformation
// and addRecipeNutrition) and the information endpoint.
type recipeInfo struct {
	ID                   int                   `json:"id"`
	Title                string                `json:"title"`
	Image                string                `json:"image"`
	Summary              string                `json:"summary"`
	SourceURL            string                `json:"sourceUrl"`
	ReadyInMinutes       int                   `json:"readyInMinutes"`
	Vegetarian           bool                  `json:"vegetarian"`
	Instructions         string                `json:"instructions"`
	AnalyzedInstructions []analyzedInstruction `json:"analyzedInstructions"`
	ExtendedIngredients  []extendedIngredient  `json:"extendedIngredients"`
	Nutrition            *nutrition            `json:"nutrition"`
}

type analyzedInstruction struct {
	Name  string `json:"name"`
	Steps []struct {
		Number int    `json:"number"`
		Step   string `json:"step"`
	} `json:"steps"`
}

type extendedIngredient struct {
	Name     string  `json:"name"`
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

type nutrition struct {
	Nutrients []nutrient `json:"nutrients"`
}

type nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// errorResponse is the body Spoonacular sends with 4xx statuses, e.g.
// {"status":"failure","code":402,"message":"..."}.
type errorResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
