package routing

import (
	"context"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/pkg/logger"
)

// Evaluator prices itineraries against the tariff table and attaches the
// carriers' partnership preference. Tariff lookups are memoized per evaluator,
// so one evaluator must serve a single search only.
type Evaluator struct {
	tariffs      repository.TariffRepository
	partnerships map[string]int
	defaultScore int
	weightKg     float64
	logger       logger.Logger

	routes map[cityPair][]entity.TariffEntry
}

// NewEvaluator creates an evaluator for one search. partnerships may be nil,
// in which case every carrier gets the default score.
func NewEvaluator(tariffs repository.TariffRepository, partnerships map[string]int, defaults PartnershipDefaults, weightKg float64, log logger.Logger) *Evaluator {
	return &Evaluator{
		tariffs:      tariffs,
		partnerships: partnerships,
		defaultScore: entity.ClampPartnershipScore(defaults.DefaultScore),
		weightKg:     weightKg,
		logger:       log,
		routes:       make(map[cityPair][]entity.TariffEntry),
	}
}

// Evaluate prices every leg and fills the cost and partnership metrics.
// The composite score is left to the scorer.
func (e *Evaluator) Evaluate(ctx context.Context, it entity.Itinerary) entity.Candidate {
	c := entity.Candidate{
		Itinerary: it,
		LegCosts:  make([]entity.LegCost, len(it.Legs)),
		Metrics: entity.ItineraryMetrics{
			DurationMinutes: it.Duration().Minutes(),
			Stops:           it.Stops(),
			CarrierChanges:  it.CarrierChanges(),
		},
	}

	partnershipTotal := 0
	for i, leg := range it.Legs {
		cost := e.LegCost(ctx, leg)
		c.LegCosts[i] = cost
		c.Metrics.TotalCost += cost.Cost
		if cost.Missing() {
			c.Metrics.MissingTariff = true
		}
		partnershipTotal += e.PartnershipScore(leg.Carrier)
	}

	if len(it.Legs) > 0 {
		c.Metrics.AvgPartnership = float64(partnershipTotal) / float64(len(it.Legs))
	} else {
		c.Metrics.AvgPartnership = float64(e.defaultScore)
	}
	return c
}

// LegCost resolves the tariff of one leg: the exact carrier entry when present,
// otherwise the cheapest priced entry for the city pair. An unpublished price, a
// pair with no tariff at all, or a failed lookup all cost zero and are flagged.
func (e *Evaluator) LegCost(ctx context.Context, leg entity.Leg) entity.LegCost {
	cost := entity.LegCost{WeightKg: e.weightKg, Source: entity.TariffNone}

	entries := e.routeTariffs(ctx, leg.Origin, leg.Destination)
	entry, source := resolveTariff(entries, leg.Carrier)
	if entry == nil {
		return cost
	}

	cost.Service = entry.Service
	cost.MatchedCarrier = entry.Carrier
	cost.Source = source
	if !entry.Priced() {
		cost.Source = entity.TariffUnpublished
		return cost
	}

	price := *entry.PricePerKg
	cost.PricePerKg = &price
	cost.Cost = price * e.weightKg
	return cost
}

// PartnershipScore returns the configured score of a carrier, or the default.
func (e *Evaluator) PartnershipScore(carrier string) int {
	if score, ok := e.partnerships[carrier]; ok {
		return entity.ClampPartnershipScore(score)
	}
	return e.defaultScore
}

func (e *Evaluator) routeTariffs(ctx context.Context, origin, destination string) []entity.TariffEntry {
	pair := cityPair{origin, destination}
	if entries, ok := e.routes[pair]; ok {
		return entries
	}
	entries, err := e.tariffs.FindByRoute(ctx, origin, destination)
	if err != nil {
		e.logger.Error("Tariff lookup failed", "origin", origin, "destination", destination, "error", err)
		entries = nil
	}
	e.routes[pair] = entries
	return entries
}

// resolveTariff picks the exact-carrier entry, falling back to the lowest-priced
// entry of the pair. With no priced entry at all, the first unpriced one is returned.
func resolveTariff(entries []entity.TariffEntry, carrier string) (*entity.TariffEntry, entity.TariffSource) {
	for i := range entries {
		if entries[i].Carrier == carrier {
			return &entries[i], entity.TariffExact
		}
	}

	var cheapest *entity.TariffEntry
	for i := range entries {
		if !entries[i].Priced() {
			continue
		}
		if cheapest == nil || *entries[i].PricePerKg < *cheapest.PricePerKg {
			cheapest = &entries[i]
		}
	}
	if cheapest != nil {
		return cheapest, entity.TariffFallback
	}
	if len(entries) > 0 {
		return &entries[0], entity.TariffFallback
	}
	return nil, entity.TariffNone
}
