package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AceRider75/moodfood/internal/core/domain"
	"github.com/AceRider75/moodfood/internal/core/ports"
	"github.com/AceRider75/moodfood/internal/logging"
)

var _ ports.Resolver = (*RecipeResolver)(nil)

// RecipeResolver drives the fallback chain: fetch candidates for each planned
// spec until one is non-empty, pick one at random and fetch its detail if the
// upstream did not already return it.
type RecipeResolver struct {
	planner ports.Planner
	source  ports.RecipeSource
	chooser *Chooser
}

// NewResolver wires a planner to the source it was designed for.
func NewResolver(planner ports.Planner, source ports.RecipeSource, chooser *Chooser) *RecipeResolver {
	return &RecipeResolver{
		planner: planner,
		source:  source,
		chooser: chooser,
	}
}

// Resolve produces exactly one outcome for the request. Upstream errors end
// the resolution immediately; they are not retried and do not advance the
// fallback chain.
func (r *RecipeResolver) Resolve(ctx context.Context, mood domain.Mood, filters domain.FilterSet) (out domain.Outcome) {
	log := logging.FromContext(ctx).WithField("mood", mood)

	defer func() {
		if rec := recover(); rec != nil {
			log.WithField("panic", rec).Error("resolver: recovered from panic")
			out = domain.Fail(domain.FailureNetwork, 0, "internal error")
		}
	}()

	if err := filters.Validate(); err != nil {
		log.WithError(err).Warn("resolver: ignoring invalid fat bound")
		filters.MaxFatGrams = 0
	}

	attempt := 0
	for spec := range r.planner.Plan(mood, filters) {
		attempt++
		specLog := log.WithField("attempt", attempt).WithField("query", spec.String())

		candidates, err := r.source.FetchCandidates(ctx, spec)
		if err != nil {
			specLog.WithError(err).Warn("resolver: candidate fetch failed")
			return networkFailure(err)
		}
		if len(candidates) == 0 {
			specLog.Debug("resolver: no candidates, falling back")
			continue
		}

		chosen := Pick(r.chooser, candidates)
		specLog.WithField("candidates", len(candidates)).WithField("recipe_id", chosen.ID).Debug("resolver: candidate selected")

		if chosen.Detail != nil {
			return domain.Success(*chosen.Detail)
		}

		recipe, err := r.source.FetchDetail(ctx, chosen.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				specLog.WithError(err).Warn("resolver: chosen recipe vanished")
				return domain.Fail(domain.FailureNotFound, 0, fmt.Sprintf("recipe %s is no longer available", chosen.ID))
			}
			specLog.WithError(err).Warn("resolver: detail fetch failed")
			return networkFailure(err)
		}
		return domain.Success(recipe)
	}

	log.WithField("attempts", attempt).Info("resolver: plan exhausted")
	return domain.Fail(domain.FailureNotFound, 0, domain.MessageNoMatch)
}

func networkFailure(err error) domain.Outcome {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return domain.Fail(domain.FailureNetwork, upstream.Status, upstream.Message)
	}
	return domain.Fail(domain.FailureNetwork, 0, err.Error())
}
