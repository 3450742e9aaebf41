package routing

import (
	"math"

	"cargo-route-service/internal/domain/entity"
)

// Scorer computes the composite score of an itinerary. Lower is better.
//
//	score = minutes*Time + stops*Connection + changes*CarrierChange + costComponent - partnershipBonus
//
// costComponent is totalCost*Cost, replaced by MissingPenalty when the tariff is
// missing or the cost exceeds HighCostCeiling. partnershipBonus is
// avgPartnership^PartnershipExponent / PartnershipDivisor.
type Scorer struct {
	Weights Weights
}

// NewScorer creates a scorer
func NewScorer(w Weights) *Scorer {
	return &Scorer{Weights: w}
}

// Score returns the composite score for m
func (s *Scorer) Score(m entity.ItineraryMetrics) float64 {
	w := s.Weights
	base := m.DurationMinutes*w.Time +
		float64(m.Stops)*w.Connection +
		float64(m.CarrierChanges)*w.CarrierChange

	return base + s.costComponent(m) - s.PartnershipBonus(m.AvgPartnership)
}

// OverCeiling reports whether the total cost exceeds the high-cost ceiling
func (s *Scorer) OverCeiling(m entity.ItineraryMetrics) bool {
	return m.TotalCost > s.Weights.HighCostCeiling
}

// PartnershipBonus is the super-linear reward for preferred carriers.
func (s *Scorer) PartnershipBonus(avg float64) float64 {
	if avg <= 0 || s.Weights.PartnershipDivisor == 0 {
		return 0
	}
	return math.Pow(avg, s.Weights.PartnershipExponent) / s.Weights.PartnershipDivisor
}

// Apply scores every candidate in place
func (s *Scorer) Apply(candidates []entity.Candidate) {
	for i := range candidates {
		candidates[i].Metrics.Score = s.Score(candidates[i].Metrics)
	}
}

func (s *Scorer) costComponent(m entity.ItineraryMetrics) float64 {
	if m.MissingTariff || s.OverCeiling(m) {
		return s.Weights.MissingPenalty
	}
	return m.TotalCost * s.Weights.Cost
}
