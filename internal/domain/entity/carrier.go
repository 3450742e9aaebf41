package entity

import (
	"time"
)

// DefaultPartnershipScore is the neutral score used for carriers with no configuration.
const DefaultPartnershipScore = 50

// CarrierPartnership holds the business preference for a carrier, from
// 0 (avoid) through 50 (neutral) to 100 (preferred partner).
type CarrierPartnership struct {
	ID        uint      `json:"id,omitempty"`
	Carrier   string    `json:"carrier"`
	Score     int       `json:"score"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ClampPartnershipScore bounds a score to [0,100].
func ClampPartnershipScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
