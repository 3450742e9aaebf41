package routing

import (
	"sort"
	"time"

	"cargo-route-service/internal/domain/entity"
)

// validationState tracks the walk of a path in Validate.
type validationState int

const (
	awaitingFirstLeg validationState = iota
	awaitingConnection
	failed
)

// Validator turns airport paths into concrete, chronologically feasible itineraries.
//
// The first leg must depart strictly after the earliest-availability instant; each
// following leg must depart within [arrival+MinConnection, arrival+MaxConnection] of
// the previous chosen leg. On every edge, legs of the previous leg's carrier are tried
// first, each group in ascending departure order, and the first fit is kept. The
// choice is greedy: an earlier edge is never revisited, so a path can be rejected
// even though another flight choice upstream would have made it feasible.
type Validator struct {
	MinConnection time.Duration
	MaxConnection time.Duration
}

// NewValidator creates a validator from the search limits
func NewValidator(limits SearchLimits) *Validator {
	return &Validator{
		MinConnection: limits.MinConnection,
		MaxConnection: limits.MaxConnection,
	}
}

// Validate walks path left to right and returns the chosen legs. When firstCarrier
// is not empty, the first edge only considers legs of that carrier.
func (v *Validator) Validate(g *ScheduleGraph, path []string, earliest time.Time, firstCarrier string) (entity.Itinerary, bool) {
	if len(path) < 2 {
		return entity.Itinerary{}, false
	}

	state := awaitingFirstLeg
	chosen := make([]entity.Leg, 0, len(path)-1)
	var nextAvailable time.Time

	for i := 0; i+1 < len(path) && state != failed; i++ {
		options := g.Legs(path[i], path[i+1])

		var leg entity.Leg
		var ok bool
		switch state {
		case awaitingFirstLeg:
			leg, ok = v.firstLeg(options, earliest, firstCarrier)
		case awaitingConnection:
			leg, ok = v.connection(options, chosen[len(chosen)-1].Carrier, nextAvailable)
		}

		if !ok {
			state = failed
			continue
		}
		chosen = append(chosen, leg)
		nextAvailable = leg.ArrivesAt()
		state = awaitingConnection
	}

	if state == failed {
		return entity.Itinerary{}, false
	}
	return entity.Itinerary{Legs: chosen}, true
}

// Feasible returns the itineraries for path, one per carrier able to fly its first
// edge. Seeds are ordered by the carrier's earliest qualifying departure.
func (v *Validator) Feasible(g *ScheduleGraph, path []string, earliest time.Time) []entity.Itinerary {
	if len(path) < 2 {
		return nil
	}
	var itineraries []entity.Itinerary
	for _, carrier := range firstEdgeCarriers(g.Legs(path[0], path[1]), earliest) {
		if it, ok := v.Validate(g, path, earliest, carrier); ok {
			itineraries = append(itineraries, it)
		}
	}
	return itineraries
}

func (v *Validator) firstLeg(options []entity.Leg, earliest time.Time, carrier string) (entity.Leg, bool) {
	for _, leg := range options {
		if carrier != "" && leg.Carrier != carrier {
			continue
		}
		if leg.Departure.After(earliest) {
			return leg, true
		}
	}
	return entity.Leg{}, false
}

func (v *Validator) connection(options []entity.Leg, preferredCarrier string, arrival time.Time) (entity.Leg, bool) {
	earliest := arrival.Add(v.MinConnection)
	latest := arrival.Add(v.MaxConnection)

	for _, leg := range preferCarrier(options, preferredCarrier) {
		if leg.Departure.Before(earliest) || leg.Departure.After(latest) {
			continue
		}
		return leg, true
	}
	return entity.Leg{}, false
}

// preferCarrier orders legs with the given carrier first, keeping departure order in each group.
func preferCarrier(legs []entity.Leg, carrier string) []entity.Leg {
	ordered := make([]entity.Leg, 0, len(legs))
	for _, leg := range legs {
		if leg.Carrier == carrier {
			ordered = append(ordered, leg)
		}
	}
	for _, leg := range legs {
		if leg.Carrier != carrier {
			ordered = append(ordered, leg)
		}
	}
	return ordered
}

// firstEdgeCarriers lists carriers with a leg departing after earliest,
// ordered by their first such departure, then by code.
func firstEdgeCarriers(legs []entity.Leg, earliest time.Time) []string {
	first := make(map[string]time.Time)
	for _, leg := range legs {
		if !leg.Departure.After(earliest) {
			continue
		}
		if t, ok := first[leg.Carrier]; !ok || leg.Departure.Before(t) {
			first[leg.Carrier] = leg.Departure
		}
	}
	carriers := make([]string, 0, len(first))
	for c := range first {
		carriers = append(carriers, c)
	}
	sort.Slice(carriers, func(i, j int) bool {
		ti, tj := first[carriers[i]], first[carriers[j]]
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return carriers[i] < carriers[j]
	})
	return carriers
}
