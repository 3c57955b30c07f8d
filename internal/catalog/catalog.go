// Package catalog loads the mood tables the planners draw from. The
// built-in tables apply unless a YAML file overrides individual moods.
package catalog

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AceRider75/moodfood/internal/core/domain"
)

// Catalog holds both planners' mood tables.
type Catalog struct {
	Categories map[domain.Mood][]string
	Keywords   map[domain.Mood]domain.KeywordQuery
}

// file is the YAML layout:
//
//	moods:
//	  happy:
//	    categories: [Dessert, Seafood]
//	    keywords: dessert celebration
//	    max_calories: 900
type file struct {
	Moods map[string]entry `yaml:"moods"`
}

type entry struct {
	Categories   []string `yaml:"categories"`
	Keywords     string   `yaml:"keywords"`
	MaxCalories  *int     `yaml:"max_calories"`
	MaxReadyTime *int     `yaml:"max_ready_time"`
}

// Default returns a copy of the built-in tables.
func Default() Catalog {
	categories := make(map[domain.Mood][]string, len(domain.MoodCategories))
	for m, c := range domain.MoodCategories {
		categories[m] = slices.Clone(c)
	}
	return Catalog{
		Categories: categories,
		Keywords:   maps.Clone(domain.MoodKeywords),
	}
}

// Load reads path and overlays it on Default.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return cat, nil
}

// Parse overlays a YAML document on Default. A mood entry replaces the
// categories and the keyword query only for the parts it sets. Bounds given
// without keywords apply to the mood's existing keyword query.
func Parse(data []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, err
	}

	cat := Default()
	for raw, e := range f.Moods {
		mood := domain.ParseMood(raw)
		if !mood.Known() || mood == domain.MoodRandom {
			return Catalog{}, fmt.Errorf("mood %q cannot be configured", raw)
		}
		if negative(e.MaxCalories) || negative(e.MaxReadyTime) {
			return Catalog{}, fmt.Errorf("mood %q: bounds must not be negative", raw)
		}

		if len(e.Categories) > 0 {
			categories := make([]string, 0, len(e.Categories))
			for _, c := range e.Categories {
				c = strings.TrimSpace(c)
				if c == "" {
					return Catalog{}, fmt.Errorf("mood %q: empty category", raw)
				}
				categories = append(categories, c)
			}
			cat.Categories[mood] = categories
		}

		kq, ok := cat.Keywords[mood]
		if kw := strings.TrimSpace(e.Keywords); kw != "" {
			kq, ok = domain.KeywordQuery{Keywords: kw}, true
		} else if !ok && (e.MaxCalories != nil || e.MaxReadyTime != nil) {
			return Catalog{}, fmt.Errorf("mood %q: bounds need keywords", raw)
		}
		if !ok {
			continue
		}
		if e.MaxCalories != nil {
			kq.MaxCalories = *e.MaxCalories
		}
		if e.MaxReadyTime != nil {
			kq.MaxReadyTime = *e.MaxReadyTime
		}
		cat.Keywords[mood] = kq
	}
	return cat, nil
}

func negative(v *int) bool {
	return v != nil && *v < 0
}
