package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/utils"

	"gorm.io/gorm"
)

// GormScheduleRepository implements the ScheduleRepository interface
type GormScheduleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScheduleRepository creates a new GORM schedule repository
func NewGormScheduleRepository(db *gorm.DB, logger logger.Logger) repository.ScheduleRepository {
	return &GormScheduleRepository{
		db:     db,
		logger: logger,
	}
}

// ActiveLegs returns legs of active revisions departing between from and to (dates inclusive)
func (r *GormScheduleRepository) ActiveLegs(ctx context.Context, from, to time.Time) ([]entity.Leg, error) {
	var rows []FlightLegs
	result := r.db.WithContext(ctx).
		Joins("JOIN schedule_revisions ON schedule_revisions.id = flight_legs.revision_id").
		Where("schedule_revisions.active = ?", true).
		Where("schedule_revisions.deleted_at IS NULL").
		Where("flight_legs.departure_date BETWEEN ? AND ?", from.Format(utils.ISO_DATE_LAYOUT), to.Format(utils.ISO_DATE_LAYOUT)).
		Order("flight_legs.departure_date, flight_legs.departure_time, flight_legs.id").
		Find(&rows)

	if result.Error != nil {
		return nil, fmt.Errorf("load active legs: %w", result.Error)
	}

	legs := make([]entity.Leg, 0, len(rows))
	for _, row := range rows {
		leg, err := toLeg(row)
		if err != nil {
			r.logger.Warn("Skipping unreadable flight leg", "id", row.ID, "error", err)
			continue
		}
		legs = append(legs, leg)
	}

	return legs, nil
}

// ActiveRevisions lists the active schedule revisions, newest month first
func (r *GormScheduleRepository) ActiveRevisions(ctx context.Context) ([]*entity.ScheduleRevision, error) {
	var rows []ScheduleRevisions
	result := r.db.WithContext(ctx).Where("active = ?", true).Order("reference_month DESC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	revisions := make([]*entity.ScheduleRevision, 0, len(rows))
	for _, row := range rows {
		revisions = append(revisions, &entity.ScheduleRevision{
			ID:             row.ID,
			ReferenceMonth: row.ReferenceMonth,
			SourceFile:     row.SourceFile,
			UploadedBy:     row.UploadedBy,
			Action:         row.Action,
			Active:         row.Active,
			UploadedAt:     row.CreatedAt,
		})
	}
	return revisions, nil
}

// toLeg converts a stored row into a domain leg on the UTC wall clock. The
// arrival clock alone rolls over at most one day; a block time of a day or more
// is recovered from estimated_minutes.
func toLeg(row FlightLegs) (entity.Leg, error) {
	departure, err := utils.ParseClock(row.DepartureTime)
	if err != nil {
		return entity.Leg{}, fmt.Errorf("departure time: %w", err)
	}
	arrival, err := utils.ParseClock(row.ArrivalTime)
	if err != nil {
		return entity.Leg{}, fmt.Errorf("arrival time: %w", err)
	}

	y, m, d := row.DepartureDate.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	leg := entity.Leg{
		Carrier:      utils.NormalizeCode(row.Carrier),
		FlightNumber: row.FlightNumber,
		Origin:       utils.NormalizeCode(row.Origin),
		Destination:  utils.NormalizeCode(row.Destination),
		Departure:    utils.CombineDateClock(date, departure),
		Arrival:      utils.CombineDateClock(date, arrival),
	}

	if row.EstimatedMinutes != nil && *row.EstimatedMinutes > 0 {
		expected := leg.Departure.Add(time.Duration(*row.EstimatedMinutes) * time.Minute)
		arrives := leg.ArrivesAt()
		if extraDays := int(math.Round(expected.Sub(arrives).Hours() / 24)); extraDays > 0 {
			leg.Arrival = arrives.AddDate(0, 0, extraDays)
		}
	}
	return leg, nil
}
