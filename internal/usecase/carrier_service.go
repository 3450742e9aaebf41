package usecase

import (
	"context"
	"errors"
	"fmt"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/utils"
)

// ErrInvalidCarrier is returned for an update with no carrier code or an out-of-range score
var ErrInvalidCarrier = errors.New("invalid carrier partnership")

// CarrierService manages carrier partnership scores
type CarrierService struct {
	carrierRepo repository.CarrierRepository
	logger      logger.Logger
}

// NewCarrierService creates a new carrier service
func NewCarrierService(carrierRepo repository.CarrierRepository, logger logger.Logger) *CarrierService {
	return &CarrierService{
		carrierRepo: carrierRepo,
		logger:      logger,
	}
}

// List returns every known carrier with its partnership score
func (s *CarrierService) List(ctx context.Context) ([]*entity.CarrierPartnership, error) {
	return s.carrierRepo.List(ctx)
}

// UpdateScore sets the partnership score of a carrier. Scores must lie in [0,100].
func (s *CarrierService) UpdateScore(ctx context.Context, carrier string, score int) error {
	code := utils.NormalizeCode(carrier)
	if code == "" {
		return fmt.Errorf("%w: carrier code is required", ErrInvalidCarrier)
	}
	if score != entity.ClampPartnershipScore(score) {
		return fmt.Errorf("%w: score %d is outside 0..100", ErrInvalidCarrier, score)
	}

	if err := s.carrierRepo.Upsert(ctx, code, score); err != nil {
		s.logger.Error("Failed to update partnership score", "carrier", code, "score", score, "error", err)
		return err
	}
	s.logger.Info("Partnership score updated", "carrier", code, "score", score)
	return nil
}
