package routing

import (
	"context"
	"errors"
	"time"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/pkg/logger"
)

// day is the reference schedule day used across the routing tests.
var day = time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

// at returns the reference day plus offset days at hh:mm.
func at(offset, hh, mm int) time.Time {
	return day.AddDate(0, 0, offset).Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

// leg builds a leg departing and arriving on the reference day. An arrival
// clock earlier than the departure clock lands on the next day.
func leg(carrier, number, origin, destination string, dep, arr time.Time) entity.Leg {
	return entity.Leg{
		Carrier:      carrier,
		FlightNumber: number,
		Origin:       origin,
		Destination:  destination,
		Departure:    dep,
		Arrival:      arr,
	}
}

func price(v float64) *float64 {
	return &v
}

// fakeTariffs is an in-memory tariff table keyed by "ORIGIN-DESTINATION".
type fakeTariffs struct {
	entries map[string][]entity.TariffEntry
	err     error
	calls   int
}

func newFakeTariffs(entries ...entity.TariffEntry) *fakeTariffs {
	f := &fakeTariffs{entries: make(map[string][]entity.TariffEntry)}
	for _, e := range entries {
		key := e.Origin + "-" + e.Destination
		f.entries[key] = append(f.entries[key], e)
	}
	return f
}

func (f *fakeTariffs) FindByRoute(_ context.Context, origin, destination string) ([]entity.TariffEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[origin+"-"+destination], nil
}

var errStoreDown = errors.New("store down")

func tariff(origin, destination, carrier string, perKg *float64) entity.TariffEntry {
	return entity.TariffEntry{
		Origin:      origin,
		Destination: destination,
		Carrier:     carrier,
		Service:     carrier + " STANDARD",
		PricePerKg:  perKg,
	}
}

func testEngine() *Engine {
	return NewEngine(DefaultSearchLimits(), DefaultWeights(), logger.NewNopLogger())
}

func testEvaluator(tariffs *fakeTariffs, scores map[string]int, weightKg float64) *Evaluator {
	return NewEvaluator(tariffs, scores, DefaultPartnership(), weightKg, logger.NewNopLogger())
}

func request(origins, destinations []string, earliest time.Time, weightKg float64) Request {
	return Request{
		EarliestAt:   earliest,
		LatestDate:   earliest,
		Origins:      origins,
		Destinations: destinations,
		WeightKg:     weightKg,
	}.Normalize()
}
