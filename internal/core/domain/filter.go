package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter is returned for filter sets the planner cannot honor.
var ErrInvalidFilter = errors.New("domain: invalid filter")

// FilterSet holds the user's dietary and nutritional constraints for one request.
type FilterSet struct {
	VegetarianOnly bool `json:"vegetarian_only"`
	// MaxFatGrams is an upper bound on fat per serving. Zero means unset.
	MaxFatGrams int `json:"max_fat_grams,omitempty"`
}

// Validate rejects negative fat bounds.
func (f FilterSet) Validate() error {
	if f.MaxFatGrams < 0 {
		return fmt.Errorf("%w: max fat grams must not be negative, got %d", ErrInvalidFilter, f.MaxFatGrams)
	}
	return nil
}

// Diet returns the diet tag implied by the filters, or "" when unrestricted.
func (f FilterSet) Diet() string {
	if f.VegetarianOnly {
		return DietVegetarian
	}
	return ""
}
