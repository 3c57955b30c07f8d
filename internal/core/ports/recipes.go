package ports

import (
	"context"
	"iter"

	"github.com/AceRider75/moodfood/internal/core/domain"
)

// RecipeSource executes query specs against an upstream recipe API.
type RecipeSource interface {
	// FetchCandidates runs one spec. An empty result is not an error.
	FetchCandidates(ctx context.Context, spec domain.QuerySpec) ([]domain.CandidateRef, error)
	// FetchDetail looks up the full record for a chosen candidate.
	FetchDetail(ctx context.Context, id string) (domain.Recipe, error)
}

// Planner turns a mood and filters into a lazily evaluated fallback chain.
type Planner interface {
	Plan(mood domain.Mood, filters domain.FilterSet) iter.Seq[domain.QuerySpec]
}

// Resolver runs one resolution. It never returns an error; failures are
// carried in the outcome.
type Resolver interface {
	Resolve(ctx context.Context, mood domain.Mood, filters domain.FilterSet) domain.Outcome
}
