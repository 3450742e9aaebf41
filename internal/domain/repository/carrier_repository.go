package repository

import (
	"context"

	"cargo-route-service/internal/domain/entity"
)

// CarrierRepository defines partnership score operations
type CarrierRepository interface {
	// Scores returns carrier → score for every active configuration.
	Scores(ctx context.Context) (map[string]int, error)
	List(ctx context.Context) ([]*entity.CarrierPartnership, error)
	Upsert(ctx context.Context, carrier string, score int) error
}
