package ports

import (
	"context"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

// AddressRepository stores the ship-from addresses a user saved.
// Every lookup is scoped to the owning user.
type AddressRepository interface {
	Create(ctx context.Context, addr *domain.SavedAddress) (*domain.SavedAddress, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SavedAddress, error)
	FindByID(ctx context.Context, userID, id string) (*domain.SavedAddress, error)
	Delete(ctx context.Context, userID, id string) error
}

// AddressService defines use-case operations for saved addresses.
type AddressService interface {
	Save(ctx context.Context, userID string, in AddressInput) (*domain.SavedAddress, error)
	List(ctx context.Context, userID string) ([]domain.SavedAddress, error)
	Delete(ctx context.Context, userID, id string) error
}
