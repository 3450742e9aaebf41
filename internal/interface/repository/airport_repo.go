package repository

import (
	"context"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/pkg/utils"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// GetByCodes finds airports by IATA code. Unknown codes are absent from the result.
func (r *GormAirportRepository) GetByCodes(ctx context.Context, codes []string) (map[string]entity.Airport, error) {
	airports := make(map[string]entity.Airport, len(codes))
	if len(codes) == 0 {
		return airports, nil
	}

	var rows []Airports
	result := r.db.WithContext(ctx).Where("iata_code IN ?", codes).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		code := utils.NormalizeCode(row.IataCode)
		airports[code] = entity.Airport{
			Code:      code,
			Name:      row.Name,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		}
	}
	return airports, nil
}
