package repository

import (
	"context"
	"fmt"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/pkg/utils"

	"gorm.io/gorm"
)

// GormTariffRepository implements the TariffRepository interface
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository
func NewGormTariffRepository(db *gorm.DB) repository.TariffRepository {
	return &GormTariffRepository{
		db: db,
	}
}

// FindByRoute returns the active tariff entries of a city pair
func (r *GormTariffRepository) FindByRoute(ctx context.Context, origin, destination string) ([]entity.TariffEntry, error) {
	var rows []Tariffs
	result := r.db.WithContext(ctx).
		Joins("JOIN tariff_revisions ON tariff_revisions.id = tariffs.revision_id").
		Where("tariff_revisions.active = ?", true).
		Where("tariff_revisions.deleted_at IS NULL").
		Where("tariffs.origin = ? AND tariffs.destination = ?", origin, destination).
		Order("tariffs.id").
		Find(&rows)

	if result.Error != nil {
		return nil, fmt.Errorf("load tariffs %s-%s: %w", origin, destination, result.Error)
	}

	entries := make([]entity.TariffEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, toTariffEntry(row))
	}
	return entries, nil
}

// toTariffEntry maps a stored row, deriving the carrier from the service name
// when blank and the price from the raw cell when no numeric price was stored.
func toTariffEntry(row Tariffs) entity.TariffEntry {
	carrier := utils.NormalizeCode(row.Carrier)
	if carrier == "" {
		carrier = utils.CarrierFromService(row.Service)
	}
	price := row.PricePerKg
	if price == nil {
		price = utils.ParseTariff(row.PriceRaw)
	}
	return entity.TariffEntry{
		Origin:      utils.NormalizeCode(row.Origin),
		Destination: utils.NormalizeCode(row.Destination),
		Carrier:     carrier,
		Service:     row.Service,
		PricePerKg:  price,
	}
}
