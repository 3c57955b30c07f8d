// Package render turns a resolution outcome into the fields a recipe card
// displays. It never surfaces raw upstream errors.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/AceRider75/moodfood/internal/core/domain"
)

const (
	NoInstructions = "No instructions provided."
	Unknown        = "unknown"
)

// View is a display-ready recipe card or error card.
type View struct {
	Theme        string    `json:"theme"`
	Error        bool      `json:"error"`
	Title        string    `json:"title"`
	Message      string    `json:"message,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	ImageAlt     string    `json:"image_alt,omitempty"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions,omitempty"`
	Summary      string    `json:"summary,omitempty"`
	SourceURL    string    `json:"source_url,omitempty"`
	Nutrition    Nutrition `json:"nutrition"`
}

// Nutrition holds formatted facts; absent values read Unknown.
type Nutrition struct {
	Calories string `json:"calories"`
	Fat      string `json:"fat"`
}

type errorCopy struct {
	title, message string
}

var (
	vegetarianNotFound = errorCopy{"Not Found", "Could not find any vegetarian recipes via the API."}
	genericNotFound    = errorCopy{"Oops!", "Could not find a suitable recipe this time. Please try another mood or the surprise button!"}
	networkError       = errorCopy{"Network Error", "Failed to load recipe. Please check your internet connection and try again."}
)

// Render builds the view for out. Theme follows the mood whether or not the
// resolution succeeded.
func Render(mood domain.Mood, filters domain.FilterSet, out domain.Outcome) View {
	theme := mood.Theme()
	if out.OK() {
		return recipeView(theme, *out.Recipe)
	}

	c := networkError
	if out.Failure != nil && out.Failure.Kind == domain.FailureNotFound {
		c = genericNotFound
		if filters.VegetarianOnly {
			c = vegetarianNotFound
		}
	}
	return View{
		Theme:       theme,
		Error:       true,
		Title:       c.title,
		Message:     c.message,
		Ingredients: []string{},
		Nutrition:   Nutrition{Calories: Unknown, Fat: Unknown},
	}
}

func recipeView(theme string, r domain.Recipe) View {
	v := View{
		Theme:        theme,
		Title:        r.Title,
		ImageURL:     r.ImageURL,
		Ingredients:  make([]string, 0, len(r.Ingredients)),
		Instructions: strings.TrimSpace(r.Instructions),
		Summary:      StripHTML(r.Summary),
		SourceURL:    r.SourceURL,
		Nutrition: Nutrition{
			Calories: formatAmount(r.Nutrition.Calories, "kcal"),
			Fat:      formatAmount(r.Nutrition.FatGrams, "g"),
		},
	}
	if v.ImageURL != "" {
		v.ImageAlt = r.Title
	}
	for _, ing := range r.Ingredients {
		if line := ing.Line(); line != "" {
			v.Ingredients = append(v.Ingredients, line)
		}
	}
	if v.Instructions == "" {
		v.Instructions = NoInstructions
	}
	return v
}

// StripHTML returns the text content of an HTML fragment with whitespace
// collapsed. Unparseable input is returned trimmed.
func StripHTML(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	doc.Find("script, style").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func formatAmount(v *float64, unit string) string {
	if v == nil {
		return Unknown
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(*v, 'f', -1, 64), unit)
}
