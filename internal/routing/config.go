package routing

import (
	"time"

	"cargo-route-service/internal/domain/entity"
)

// SearchLimits bound the schedule window, the path enumeration and the
// connection window used by the validator.
type SearchLimits struct {
	LookaheadDays int
	MaxLegs       int
	MinConnection time.Duration
	MaxConnection time.Duration
	MaxPaths      int
}

// DefaultSearchLimits returns the operational limits for the cargo flow:
// a 5-day lookahead, at most two connections, and connections between 1h and 48h.
func DefaultSearchLimits() SearchLimits {
	return SearchLimits{
		LookaheadDays: 5,
		MaxLegs:       3,
		MinConnection: time.Hour,
		MaxConnection: 48 * time.Hour,
		MaxPaths:      5000,
	}
}

// Weights tune the composite score. Lower scores rank better.
type Weights struct {
	Time                float64 // per minute of total duration
	Connection          float64 // per stop
	CarrierChange       float64 // per carrier switch
	Cost                float64 // per currency unit
	MissingPenalty      float64 // replaces the cost component for unpriced or over-ceiling itineraries
	HighCostCeiling     float64
	PartnershipExponent float64
	PartnershipDivisor  float64
}

// DefaultWeights returns the weights used in production ranking.
func DefaultWeights() Weights {
	return Weights{
		Time:                1.0,
		Connection:          150,
		CarrierChange:       300,
		Cost:                0.15,
		MissingPenalty:      15000,
		HighCostCeiling:     14000,
		PartnershipExponent: 2.2,
		PartnershipDivisor:  50,
	}
}

// PartnershipDefaults configures the score given to carriers without a configuration.
type PartnershipDefaults struct {
	DefaultScore int
}

// DefaultPartnership returns the neutral default.
func DefaultPartnership() PartnershipDefaults {
	return PartnershipDefaults{DefaultScore: entity.DefaultPartnershipScore}
}
