// internal/domain/entity/itinerary.go
package entity

import (
	"strings"
	"time"
)

// Itinerary is an ordered, non-empty sequence of contiguous legs from the
// overall origin to the overall destination.
type Itinerary struct {
	Legs []Leg
}

// Origin returns the overall origin airport
func (it Itinerary) Origin() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[0].Origin
}

// Destination returns the overall destination airport
func (it Itinerary) Destination() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[len(it.Legs)-1].Destination
}

// Stops is the number of intermediate connections (legs - 1).
func (it Itinerary) Stops() int {
	if len(it.Legs) == 0 {
		return 0
	}
	return len(it.Legs) - 1
}

// CarrierChanges counts adjacent leg pairs operated by different carriers.
func (it Itinerary) CarrierChanges() int {
	changes := 0
	for i := 1; i < len(it.Legs); i++ {
		if it.Legs[i].Carrier != it.Legs[i-1].Carrier {
			changes++
		}
	}
	return changes
}

// Duration runs from the first departure to the final arrival.
func (it Itinerary) Duration() time.Duration {
	if len(it.Legs) == 0 {
		return 0
	}
	start := it.Legs[0].Departure
	end := it.Legs[len(it.Legs)-1].ArrivesAt()
	for end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return end.Sub(start)
}

// Signature identifies the itinerary by its leg sequence.
func (it Itinerary) Signature() string {
	keys := make([]string, len(it.Legs))
	for i, leg := range it.Legs {
		keys[i] = leg.Key()
	}
	return strings.Join(keys, "|")
}

// ItineraryMetrics is derived from an itinerary on every search and never persisted.
// Score is always produced by the single composite formula.
type ItineraryMetrics struct {
	DurationMinutes float64
	Stops           int
	CarrierChanges  int
	TotalCost       float64
	AvgPartnership  float64
	MissingTariff   bool
	Score           float64
}

// Candidate is a validated itinerary with its cost breakdown and metrics.
type Candidate struct {
	Itinerary Itinerary
	LegCosts  []LegCost
	Metrics   ItineraryMetrics
}
