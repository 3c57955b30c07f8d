package services

import (
	"iter"
	"strings"

	"github.com/AceRider75/moodfood/internal/core/domain"
	"github.com/AceRider75/moodfood/internal/core/ports"
)

// DefaultResultCount is how many candidates a search-style query asks for.
const DefaultResultCount = 20

var (
	_ ports.Planner = (*CategoryPlanner)(nil)
	_ ports.Planner = (*KeywordPlanner)(nil)
)

// CategoryPlanner plans filter-then-lookup queries: one mood category picked
// at random, then an unconditional tail (a random recipe, or the Vegetarian
// category when the user is vegetarian).
type CategoryPlanner struct {
	chooser    *Chooser
	categories map[domain.Mood][]string
}

// NewCategoryPlanner builds a planner over domain.MoodCategories.
func NewCategoryPlanner(chooser *Chooser) *CategoryPlanner {
	return NewCategoryPlannerWith(chooser, domain.MoodCategories)
}

// NewCategoryPlannerWith builds a planner over a custom mood table. Moods
// missing from categories plan as random.
func NewCategoryPlannerWith(chooser *Chooser, categories map[domain.Mood][]string) *CategoryPlanner {
	return &CategoryPlanner{chooser: chooser, categories: categories}
}

// Plan returns the fallback chain. Each spec is computed only when the
// previous one has been consumed.
func (p *CategoryPlanner) Plan(mood domain.Mood, filters domain.FilterSet) iter.Seq[domain.QuerySpec] {
	return func(yield func(domain.QuerySpec) bool) {
		first := p.first(mood, filters)
		if !yield(first) {
			return
		}
		if tail := p.unconditional(filters); tail != first {
			yield(tail)
		}
	}
}

func (p *CategoryPlanner) first(mood domain.Mood, filters domain.FilterSet) domain.QuerySpec {
	if mood.IsRandom() {
		return p.unconditional(filters)
	}
	categories := p.categories[mood]
	if len(categories) == 0 {
		return p.unconditional(filters)
	}

	if filters.VegetarianOnly {
		var compatible []string
		for _, c := range categories {
			if domain.IsVegetarianCategory(c) {
				compatible = append(compatible, c)
			}
		}
		if len(compatible) == 0 {
			return p.unconditional(filters)
		}
		categories = compatible
	}

	return p.category(Pick(p.chooser, categories), filters)
}

func (p *CategoryPlanner) unconditional(filters domain.FilterSet) domain.QuerySpec {
	if filters.VegetarianOnly {
		return p.category(domain.CategoryVegetarian, filters)
	}
	return domain.QuerySpec{Kind: domain.QueryRandom, MaxFat: filters.MaxFatGrams}
}

func (p *CategoryPlanner) category(name string, filters domain.FilterSet) domain.QuerySpec {
	if strings.EqualFold(name, domain.CategoryVegetarian) {
		name = domain.CategoryVegetarian
	}
	return domain.QuerySpec{
		Kind:     domain.QueryCategory,
		Category: name,
		Diet:     filters.Diet(),
		MaxFat:   filters.MaxFatGrams,
	}
}

// KeywordPlanner plans search-with-detail queries: the mood's keyword query
// with the user's diet and fat filters attached, then the same filters with
// no keyword.
type KeywordPlanner struct {
	keywords map[domain.Mood]domain.KeywordQuery
	number   int
}

// NewKeywordPlanner builds a planner over domain.MoodKeywords. number is the
// result count per search; non-positive values use DefaultResultCount.
func NewKeywordPlanner(number int) *KeywordPlanner {
	return NewKeywordPlannerWith(number, domain.MoodKeywords)
}

// NewKeywordPlannerWith builds a keyword planner over a custom mood table.
func NewKeywordPlannerWith(number int, keywords map[domain.Mood]domain.KeywordQuery) *KeywordPlanner {
	if number <= 0 {
		number = DefaultResultCount
	}
	return &KeywordPlanner{keywords: keywords, number: number}
}

// Plan returns the fallback chain for the search strategy.
func (p *KeywordPlanner) Plan(mood domain.Mood, filters domain.FilterSet) iter.Seq[domain.QuerySpec] {
	return func(yield func(domain.QuerySpec) bool) {
		base := domain.QuerySpec{
			Kind:   domain.QuerySearch,
			Diet:   filters.Diet(),
			MaxFat: filters.MaxFatGrams,
			Number: p.number,
		}

		if kq, ok := p.keywords[mood]; ok && !mood.IsRandom() && kq.Keywords != "" {
			spec := base
			spec.Keywords = kq.Keywords
			spec.MaxCalories = kq.MaxCalories
			spec.MaxReadyTime = kq.MaxReadyTime
			if !yield(spec) {
				return
			}
		}
		yield(base)
	}
}
