package repository

import (
	"context"
	"sort"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierRepository implements the CarrierRepository interface
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GORM carrier repository
func NewGormCarrierRepository(db *gorm.DB) repository.CarrierRepository {
	return &GormCarrierRepository{
		db: db,
	}
}

// Scores returns the partnership score of every active carrier configuration
func (r *GormCarrierRepository) Scores(ctx context.Context) (map[string]int, error) {
	var rows []CarrierConfigs
	result := r.db.WithContext(ctx).Where("active = ?", true).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	scores := make(map[string]int, len(rows))
	for _, row := range rows {
		scores[utils.NormalizeCode(row.Carrier)] = row.Score
	}
	return scores, nil
}

// List returns every carrier configuration ordered by carrier code.
// Carriers flying in an active schedule without a configuration are listed with the neutral score.
func (r *GormCarrierRepository) List(ctx context.Context) ([]*entity.CarrierPartnership, error) {
	var rows []CarrierConfigs
	if err := r.db.WithContext(ctx).Order("carrier").Find(&rows).Error; err != nil {
		return nil, err
	}

	var scheduled []string
	err := r.db.WithContext(ctx).Model(&FlightLegs{}).
		Joins("JOIN schedule_revisions ON schedule_revisions.id = flight_legs.revision_id").
		Where("schedule_revisions.active = ?", true).
		Distinct().
		Pluck("flight_legs.carrier", &scheduled).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	list := make([]*entity.CarrierPartnership, 0, len(rows)+len(scheduled))
	for _, row := range rows {
		code := utils.NormalizeCode(row.Carrier)
		seen[code] = true
		list = append(list, &entity.CarrierPartnership{
			ID:        row.ID,
			Carrier:   code,
			Score:     row.Score,
			Active:    row.Active,
			UpdatedAt: row.UpdatedAt,
		})
	}
	for _, code := range utils.NormalizeCodes(scheduled) {
		if seen[code] {
			continue
		}
		list = append(list, &entity.CarrierPartnership{
			Carrier: code,
			Score:   entity.DefaultPartnershipScore,
			Active:  true,
		})
	}
	sortPartnerships(list)
	return list, nil
}

// Upsert creates or updates the score of a carrier
func (r *GormCarrierRepository) Upsert(ctx context.Context, carrier string, score int) error {
	row := CarrierConfigs{
		Carrier: utils.NormalizeCode(carrier),
		Score:   entity.ClampPartnershipScore(score),
		Active:  true,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "carrier"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "active", "updated_at"}),
	}).Create(&row).Error
}

func sortPartnerships(list []*entity.CarrierPartnership) {
	sort.Slice(list, func(i, j int) bool { return list[i].Carrier < list[j].Carrier })
}
