package repository

import (
	"context"
	"time"

	"cargo-route-service/internal/domain/entity"
)

// ScheduleRepository provides read access to the active flight schedule
type ScheduleRepository interface {
	// ActiveLegs returns every leg of an active revision whose departure date
	// lies in [from, to], both dates inclusive.
	ActiveLegs(ctx context.Context, from, to time.Time) ([]entity.Leg, error)
	// ActiveRevisions lists the revisions currently feeding searches.
	ActiveRevisions(ctx context.Context) ([]*entity.ScheduleRevision, error)
}
