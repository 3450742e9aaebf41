// internal/domain/entity/leg.go
package entity

import (
	"fmt"
	"time"
)

// Leg is one scheduled flight between two airports.
// Departure and Arrival carry the nominal schedule values: Arrival shares the
// departure date, so an arrival clock earlier than the departure clock means
// the flight lands on the next day (see ArrivesAt).
type Leg struct {
	Carrier      string
	FlightNumber string
	Origin       string
	Destination  string
	Departure    time.Time
	Arrival      time.Time
}

// ArrivesAt returns the actual arrival instant, rolling the nominal arrival
// forward by whole days until it is not before the departure.
func (l Leg) ArrivesAt() time.Time {
	arrival := l.Arrival
	for arrival.Before(l.Departure) {
		arrival = arrival.Add(24 * time.Hour)
	}
	return arrival
}

// Key identifies a physical flight instance.
func (l Leg) Key() string {
	return fmt.Sprintf("%s%s:%s-%s@%s", l.Carrier, l.FlightNumber, l.Origin, l.Destination, l.Departure.Format(time.RFC3339))
}

// ScheduleRevision is one imported schedule file. Only active revisions feed searches;
// importing a new file for the same reference month deactivates the previous one.
type ScheduleRevision struct {
	ID             uint
	ReferenceMonth time.Time
	SourceFile     string
	UploadedBy     string
	Action         string
	Active         bool
	UploadedAt     time.Time
}
