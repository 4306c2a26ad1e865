package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// AddressService manages the ship-from addresses a user keeps on file.
type AddressService struct {
	repo   ports.AddressRepository
	logger zerolog.Logger
}

func NewAddressService(repo ports.AddressRepository, logger zerolog.Logger) *AddressService {
	return &AddressService{repo: repo, logger: logger}
}

// Save validates the address and stores it for userID.
func (s *AddressService) Save(ctx context.Context, userID string, in ports.AddressInput) (*domain.SavedAddress, error) {
	addr, err := buildAddress(in)
	if err != nil {
		return nil, fmt.Errorf("ship_from: %w", err)
	}
	created, err := s.repo.Create(ctx, &domain.SavedAddress{
		UserID:    userID,
		Address:   addr,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Str("address_id", created.ID).Msg("address saved")
	return created, nil
}

func (s *AddressService) List(ctx context.Context, userID string) ([]domain.SavedAddress, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *AddressService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("address_id", id).Msg("address deleted")
	return nil
}
