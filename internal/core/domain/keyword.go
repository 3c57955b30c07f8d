package domain

// KeywordQuery is a mood's search phrase plus optional nutrition bounds.
type KeywordQuery struct {
	Keywords     string
	MaxCalories  int
	MaxReadyTime int
}

// MoodKeywords maps each mood to its search-strategy query.
var MoodKeywords = map[Mood]KeywordQuery{
	MoodHappy:       {Keywords: "dessert celebration"},
	MoodSad:         {Keywords: "comfort food", MaxReadyTime: 90},
	MoodAngry:       {Keywords: "spicy"},
	MoodAdventurous: {Keywords: "exotic fusion"},
	MoodStressed:    {Keywords: "quick easy healthy", MaxCalories: 800, MaxReadyTime: 45},
	MoodChill:       {Keywords: "pasta", MaxReadyTime: 60},
}
