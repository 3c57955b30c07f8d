package domain

import (
	"fmt"
	"strings"
)

// DietVegetarian is the diet tag sent upstream for vegetarian-only requests.
const DietVegetarian = "vegetarian"

// QueryKind identifies which upstream operation a QuerySpec maps to.
type QueryKind string

const (
	QueryRandom   QueryKind = "random"
	QueryCategory QueryKind = "category"
	QuerySearch   QueryKind = "search"
)

// QuerySpec describes one upstream call. Zero numeric bounds are unset.
type QuerySpec struct {
	Kind         QueryKind `json:"kind"`
	Category     string    `json:"category,omitempty"`
	Keywords     string    `json:"keywords,omitempty"`
	Diet         string    `json:"diet,omitempty"`
	MaxFat       int       `json:"max_fat,omitempty"`
	MaxCalories  int       `json:"max_calories,omitempty"`
	MaxReadyTime int       `json:"max_ready_time,omitempty"`
	Number       int       `json:"number,omitempty"`
}

// Unrestricted reports whether the spec carries nothing beyond the mandatory
// diet and fat filters. The Vegetarian category counts as the diet filter for
// category-style upstreams.
func (q QuerySpec) Unrestricted() bool {
	switch q.Kind {
	case QueryRandom:
		return true
	case QueryCategory:
		return q.Diet == DietVegetarian && strings.EqualFold(q.Category, CategoryVegetarian)
	case QuerySearch:
		return q.Keywords == "" && q.MaxCalories == 0 && q.MaxReadyTime == 0
	default:
		return false
	}
}

// String renders the spec for log lines.
func (q QuerySpec) String() string {
	switch q.Kind {
	case QueryCategory:
		return fmt.Sprintf("category:%s", q.Category)
	case QuerySearch:
		return fmt.Sprintf("search:%q diet=%s maxFat=%d maxCalories=%d maxReadyTime=%d",
			q.Keywords, q.Diet, q.MaxFat, q.MaxCalories, q.MaxReadyTime)
	default:
		return string(q.Kind)
	}
}
