package repository

import (
	"context"
	"errors"

	"cargo-route-service/internal/domain/entity"
)

// ErrRouteSearchNotFound is returned when no audit record matches a search ID
var ErrRouteSearchNotFound = errors.New("route search not found")

// RouteSearchRepository stores the audit trail of route searches
type RouteSearchRepository interface {
	Save(ctx context.Context, search *entity.RouteSearch) error
	FindBySearchID(ctx context.Context, searchID string) (*entity.RouteSearch, error)
}
