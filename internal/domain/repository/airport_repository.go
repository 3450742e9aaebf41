package repository

import (
	"context"

	"cargo-route-service/internal/domain/entity"
)

// AirportRepository defines airport metadata lookups used for display
type AirportRepository interface {
	GetByCodes(ctx context.Context, codes []string) (map[string]entity.Airport, error)
}
