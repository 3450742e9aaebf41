package repository

import (
	"context"

	"cargo-route-service/internal/domain/entity"
)

// TariffRepository resolves freight tariffs from the active tariff table
type TariffRepository interface {
	// FindByRoute returns every active entry for an origin/destination pair,
	// across all carriers. An empty slice means the pair has no tariff at all.
	FindByRoute(ctx context.Context, origin, destination string) ([]entity.TariffEntry, error)
}
