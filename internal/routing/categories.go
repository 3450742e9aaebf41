package routing

import (
	"sort"

	"cargo-route-service/internal/domain/entity"
)

// categoryRule selects the winner of one category: candidates passing the
// predicate are ranked by key and the lowest wins. When no candidate passes
// and fallbackToAll is set, the whole candidate set is ranked instead.
type categoryRule struct {
	category      entity.Category
	predicate     func(c *entity.Candidate) bool
	key           func(c *entity.Candidate) float64
	fallbackToAll bool
}

// Categorizer picks the winning itinerary of every category
type Categorizer struct {
	rules []categoryRule
}

// NewCategorizer builds the category table. The scorer supplies the high-cost
// ceiling used by the recommended preference.
func NewCategorizer(scorer *Scorer) *Categorizer {
	byScore := func(c *entity.Candidate) float64 { return c.Metrics.Score }
	all := func(*entity.Candidate) bool { return true }
	priced := func(c *entity.Candidate) bool { return !c.Metrics.MissingTariff }

	return &Categorizer{rules: []categoryRule{
		{
			category: entity.CategoryRecommended,
			predicate: func(c *entity.Candidate) bool {
				return !c.Metrics.MissingTariff && !scorer.OverCeiling(c.Metrics)
			},
			key:           byScore,
			fallbackToAll: true,
		},
		{
			category:  entity.CategoryDirect,
			predicate: func(c *entity.Candidate) bool { return c.Metrics.Stops == 0 },
			key:       byScore,
		},
		{
			category:  entity.CategoryFastest,
			predicate: all,
			key:       func(c *entity.Candidate) float64 { return c.Metrics.DurationMinutes },
		},
		{
			category:  entity.CategoryCheapest,
			predicate: priced,
			key:       func(c *entity.Candidate) float64 { return c.Metrics.TotalCost },
		},
		{
			category: entity.CategorySameCarrierConnection,
			predicate: func(c *entity.Candidate) bool {
				return c.Metrics.Stops >= 1 && c.Metrics.CarrierChanges == 0
			},
			key: byScore,
		},
		{
			category:  entity.CategoryInterline,
			predicate: func(c *entity.Candidate) bool { return c.Metrics.CarrierChanges >= 1 },
			key:       byScore,
		},
	}}
}

// Categorize returns the winner per category. Categories without a qualifying
// candidate are absent from the map. The same candidate may win several categories.
// Ties keep the order of candidates.
func (cz *Categorizer) Categorize(candidates []entity.Candidate) map[entity.Category]*entity.Candidate {
	winners := make(map[entity.Category]*entity.Candidate, len(cz.rules))
	for _, rule := range cz.rules {
		if best := rule.pick(candidates); best != nil {
			winners[rule.category] = best
		}
	}
	return winners
}

// Rank returns the candidates qualifying for category, best first.
func (cz *Categorizer) Rank(category entity.Category, candidates []entity.Candidate) []*entity.Candidate {
	for _, rule := range cz.rules {
		if rule.category == category {
			return rule.rank(candidates)
		}
	}
	return nil
}

func (r categoryRule) pick(candidates []entity.Candidate) *entity.Candidate {
	ranked := r.rank(candidates)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}

func (r categoryRule) rank(candidates []entity.Candidate) []*entity.Candidate {
	ranked := r.filter(candidates, r.predicate)
	if len(ranked) == 0 && r.fallbackToAll {
		ranked = r.filter(candidates, func(*entity.Candidate) bool { return true })
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return r.key(ranked[i]) < r.key(ranked[j])
	})
	return ranked
}

func (r categoryRule) filter(candidates []entity.Candidate, keep func(*entity.Candidate) bool) []*entity.Candidate {
	out := make([]*entity.Candidate, 0, len(candidates))
	for i := range candidates {
		if keep(&candidates[i]) {
			out = append(out, &candidates[i])
		}
	}
	return out
}
