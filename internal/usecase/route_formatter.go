package usecase

import (
	"context"
	"sort"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/utils"
)

// RouteFormatter renders category winners into display-ready route options
type RouteFormatter struct {
	airportRepo    repository.AirportRepository
	currencySymbol string
	logger         logger.Logger
}

// NewRouteFormatter creates a new route formatter
func NewRouteFormatter(airportRepo repository.AirportRepository, currencySymbol string, logger logger.Logger) *RouteFormatter {
	return &RouteFormatter{
		airportRepo:    airportRepo,
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

// Format renders every category. Categories without a winner stay empty lists.
func (f *RouteFormatter) Format(ctx context.Context, winners map[entity.Category]*entity.Candidate) *entity.RouteOptions {
	options := entity.NewEmptyRouteOptions()
	if len(winners) == 0 {
		return options
	}

	airports := f.lookupAirports(ctx, winners)
	for _, category := range entity.Categories {
		winner := winners[category]
		if winner == nil {
			continue
		}
		options.Set(category, f.formatCandidate(category, winner, airports))
	}
	return options
}

func (f *RouteFormatter) formatCandidate(category entity.Category, c *entity.Candidate, airports map[string]entity.Airport) entity.RouteOption {
	legs := make([]entity.FormattedLeg, 0, len(c.Itinerary.Legs))
	for i, leg := range c.Itinerary.Legs {
		var cost entity.LegCost
		if i < len(c.LegCosts) {
			cost = c.LegCosts[i]
		}
		legs = append(legs, entity.FormattedLeg{
			Category:      category,
			Carrier:       leg.Carrier,
			FlightNumber:  leg.FlightNumber,
			Date:          leg.Departure.Format(utils.DATE_LAYOUT),
			DepartureTime: leg.Departure.Format(utils.CLOCK_LAYOUT),
			ArrivalTime:   leg.Arrival.Format(utils.CLOCK_LAYOUT),
			Origin:        airportInfo(airports, leg.Origin),
			Destination:   airportInfo(airports, leg.Destination),
			Cost: entity.CostBreakdown{
				PricePerKg:     cost.PricePerKg,
				Service:        cost.Service,
				MatchedCarrier: cost.MatchedCarrier,
				WeightKg:       cost.WeightKg,
				Cost:           cost.Cost,
				Source:         cost.Source,
			},
		})
	}

	return entity.RouteOption{
		Legs:            legs,
		TotalDuration:   utils.FormatDuration(c.Metrics.DurationMinutes),
		DurationMinutes: c.Metrics.DurationMinutes,
		TotalCost:       utils.FormatMoney(f.currencySymbol, c.Metrics.TotalCost),
		CostValue:       c.Metrics.TotalCost,
		MissingTariff:   c.Metrics.MissingTariff,
		Score:           c.Metrics.Score,
	}
}

// lookupAirports resolves every airport of the winners in one call.
// A failing lookup degrades to code-only airport blocks.
func (f *RouteFormatter) lookupAirports(ctx context.Context, winners map[entity.Category]*entity.Candidate) map[string]entity.Airport {
	set := make(map[string]struct{})
	for _, w := range winners {
		if w == nil {
			continue
		}
		for _, leg := range w.Itinerary.Legs {
			set[leg.Origin] = struct{}{}
			set[leg.Destination] = struct{}{}
		}
	}
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	if f.airportRepo == nil {
		return map[string]entity.Airport{}
	}
	airports, err := f.airportRepo.GetByCodes(ctx, codes)
	if err != nil {
		f.logger.Error("Airport lookup failed, rendering codes only", "codes", codes, "error", err)
		return map[string]entity.Airport{}
	}
	return airports
}

func airportInfo(airports map[string]entity.Airport, code string) entity.AirportInfo {
	a, ok := airports[code]
	if !ok {
		a = entity.UnknownAirport(code)
	}
	return entity.AirportInfo{
		Code:      a.Code,
		Name:      a.Name,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}
