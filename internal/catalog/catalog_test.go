package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AceRider75/moodfood/internal/core/domain"
)

func TestDefault_IsACopy(t *testing.T) {
	cat := Default()
	cat.Categories[domain.MoodHappy][0] = "Changed"
	delete(cat.Keywords, domain.MoodSad)

	assert.Equal(t, "Dessert", domain.MoodCategories[domain.MoodHappy][0])
	assert.Contains(t, domain.MoodKeywords, domain.MoodSad)
}

func TestParse_Overlay(t *testing.T) {
	doc := `
moods:
  Happy:
    categories: [" Dessert ", Breakfast]
  stressed:
    keywords: salad
    max_calories: 500
`
	cat, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Dessert", "Breakfast"}, cat.Categories[domain.MoodHappy])
	assert.Equal(t, domain.MoodKeywords[domain.MoodHappy], cat.Keywords[domain.MoodHappy])
	assert.Equal(t, domain.KeywordQuery{Keywords: "salad", MaxCalories: 500}, cat.Keywords[domain.MoodStressed])
	assert.Equal(t, domain.MoodCategories[domain.MoodStressed], cat.Categories[domain.MoodStressed])
}

func TestParse_BoundsWithoutKeywords(t *testing.T) {
	doc := `
moods:
  sad:
    max_calories: 600
  stressed:
    max_ready_time: 0
`
	cat, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, domain.KeywordQuery{Keywords: "comfort food", MaxCalories: 600, MaxReadyTime: 90}, cat.Keywords[domain.MoodSad])
	assert.Equal(t, domain.KeywordQuery{Keywords: "quick easy healthy", MaxCalories: 800}, cat.Keywords[domain.MoodStressed])
	assert.Equal(t, 90, domain.MoodKeywords[domain.MoodSad].MaxReadyTime)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown mood", "moods:\n  sleepy:\n    keywords: nap\n"},
		{"random mood", "moods:\n  random:\n    categories: [Beef]\n"},
		{"blank category", "moods:\n  happy:\n    categories: [\"  \"]\n"},
		{"negative bound", "moods:\n  chill:\n    keywords: soup\n    max_ready_time: -5\n"},
		{"not yaml", "moods: [unclosed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moods.yaml")
	require.NoError(t, os.WriteFile(path, []byte("moods:\n  angry:\n    categories: [Goat]\n"), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Goat"}, cat.Categories[domain.MoodAngry])

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShippedCatalogParses(t *testing.T) {
	cat, err := Load(filepath.Join("..", "..", "configs", "moods.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Categories[domain.MoodHappy])
}
