package domain

import "strings"

// CandidateRef is a lightweight search hit. Detail is set when the upstream
// already returned the full record and no lookup is needed.
type CandidateRef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Detail    *Recipe `json:"-"`
}

// Ingredient is one measured ingredient line.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Line renders the ingredient as "<measure> <name>", dropping a blank measure.
func (i Ingredient) Line() string {
	name := strings.TrimSpace(i.Name)
	measure := strings.TrimSpace(i.Measure)
	if measure == "" {
		return name
	}
	return measure + " " + name
}

// Nutrition holds per-serving facts. Nil means unknown.
type Nutrition struct {
	Calories *float64 `json:"calories,omitempty"`
	FatGrams *float64 `json:"fat_grams,omitempty"`
}

// Recipe is the resolved record handed to the renderer. Any field may be
// empty depending on the upstream; renderers treat empty as unknown.
type Recipe struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	ImageURL     string       `json:"image_url,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	Summary      string       `json:"summary,omitempty"`
	SourceURL    string       `json:"source_url,omitempty"`
	Nutrition    Nutrition    `json:"nutrition"`
}
