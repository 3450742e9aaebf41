package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-route-service/internal/domain/entity"
)

func candidate(name string, m entity.ItineraryMetrics) entity.Candidate {
	return entity.Candidate{
		Itinerary: entity.Itinerary{Legs: []entity.Leg{{Carrier: name, FlightNumber: name}}},
		Metrics:   m,
	}
}

func winnerName(w map[entity.Category]*entity.Candidate, c entity.Category) string {
	if w[c] == nil {
		return ""
	}
	return w[c].Itinerary.Legs[0].FlightNumber
}

func TestCategorizer_Rules(t *testing.T) {
	cz := NewCategorizer(NewScorer(DefaultWeights()))
	cands := []entity.Candidate{
		candidate("direct-slow", entity.ItineraryMetrics{DurationMinutes: 300, TotalCost: 900, Score: 50}),
		candidate("direct-fast", entity.ItineraryMetrics{DurationMinutes: 120, TotalCost: 0, MissingTariff: true, Score: 15100}),
		candidate("online", entity.ItineraryMetrics{DurationMinutes: 400, Stops: 1, TotalCost: 500, Score: 30}),
		candidate("interline", entity.ItineraryMetrics{DurationMinutes: 500, Stops: 1, CarrierChanges: 1, TotalCost: 400, Score: 70}),
	}

	w := cz.Categorize(cands)
	assert.Equal(t, "online", winnerName(w, entity.CategoryRecommended))
	assert.Equal(t, "direct-slow", winnerName(w, entity.CategoryDirect))
	assert.Equal(t, "direct-fast", winnerName(w, entity.CategoryFastest))
	assert.Equal(t, "interline", winnerName(w, entity.CategoryCheapest))
	assert.Equal(t, "online", winnerName(w, entity.CategorySameCarrierConnection))
	assert.Equal(t, "interline", winnerName(w, entity.CategoryInterline))
}

func TestCategorizer_CheapestNeverMissingTariff(t *testing.T) {
	cz := NewCategorizer(NewScorer(DefaultWeights()))
	cands := []entity.Candidate{
		candidate("free", entity.ItineraryMetrics{TotalCost: 0, MissingTariff: true}),
		candidate("priced", entity.ItineraryMetrics{TotalCost: 1500}),
	}

	assert.Equal(t, "priced", winnerName(cz.Categorize(cands), entity.CategoryCheapest))

	w := cz.Categorize(cands[:1])
	assert.Nil(t, w[entity.CategoryCheapest])
}

func TestCategorizer_RecommendedSkipsOverCeilingAndFallsBack(t *testing.T) {
	cz := NewCategorizer(NewScorer(DefaultWeights()))

	cands := []entity.Candidate{
		candidate("expensive", entity.ItineraryMetrics{TotalCost: 20000, Score: 10}),
		candidate("fair", entity.ItineraryMetrics{TotalCost: 2000, Score: 400}),
	}
	assert.Equal(t, "fair", winnerName(cz.Categorize(cands), entity.CategoryRecommended))

	onlyBad := []entity.Candidate{
		candidate("unpriced", entity.ItineraryMetrics{MissingTariff: true, Score: 15300}),
		candidate("expensive", entity.ItineraryMetrics{TotalCost: 20000, Score: 15200}),
	}
	assert.Equal(t, "expensive", winnerName(cz.Categorize(onlyBad), entity.CategoryRecommended))
}

func TestCategorizer_EmptyCategories(t *testing.T) {
	cz := NewCategorizer(NewScorer(DefaultWeights()))

	w := cz.Categorize([]entity.Candidate{
		candidate("direct", entity.ItineraryMetrics{DurationMinutes: 60, TotalCost: 100}),
	})
	assert.NotNil(t, w[entity.CategoryDirect])
	assert.Nil(t, w[entity.CategorySameCarrierConnection])
	assert.Nil(t, w[entity.CategoryInterline])

	assert.Empty(t, cz.Categorize(nil))
}

func TestCategorizer_RankIsStable(t *testing.T) {
	cz := NewCategorizer(NewScorer(DefaultWeights()))
	cands := []entity.Candidate{
		candidate("a", entity.ItineraryMetrics{DurationMinutes: 90}),
		candidate("b", entity.ItineraryMetrics{DurationMinutes: 60}),
		candidate("c", entity.ItineraryMetrics{DurationMinutes: 90}),
	}

	ranked := cz.Rank(entity.CategoryFastest, cands)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].Itinerary.Legs[0].FlightNumber)
	assert.Equal(t, "a", ranked[1].Itinerary.Legs[0].FlightNumber)
	assert.Equal(t, "c", ranked[2].Itinerary.Legs[0].FlightNumber)

	assert.Nil(t, cz.Rank(entity.Category("unknown"), cands))
}
