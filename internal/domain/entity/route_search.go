// internal/domain/entity/route_search.go
package entity

import (
	"time"
)

// Route search outcomes
const (
	SearchFound        = "FOUND"
	SearchNoCandidates = "NO_CANDIDATES"
	SearchInvalid      = "INVALID"
	SearchFailed       = "FAILED"
)

// RouteSearch is the audit record of one route search
type RouteSearch struct {
	SearchID           string         `bson:"searchId" json:"searchId"`
	Origins            []string       `bson:"origins" json:"origins"`
	Destinations       []string       `bson:"destinations" json:"destinations"`
	EarliestAt         time.Time      `bson:"earliestAt" json:"earliestAt"`
	LatestDate         time.Time      `bson:"latestDate" json:"latestDate"`
	WeightKg           float64        `bson:"weightKg" json:"weightKg"`
	LegsLoaded         int            `bson:"legsLoaded" json:"legsLoaded"`
	PathsFound         int            `bson:"pathsFound" json:"pathsFound"`
	Validated          int            `bson:"validated" json:"validated"`
	Truncated          bool           `bson:"truncated" json:"truncated"`
	Outcome            string         `bson:"outcome" json:"outcome"`
	CategoryLegs       map[string]int `bson:"categoryLegs" json:"categoryLegs"`
	CategoryCandidates map[string]int `bson:"categoryCandidates" json:"categoryCandidates"`
	ErrorDetail        string         `bson:"errorDetail,omitempty" json:"errorDetail,omitempty"`
	ElapsedMillis      int64          `bson:"elapsedMillis" json:"elapsedMillis"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
}
