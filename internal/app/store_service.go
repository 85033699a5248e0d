package app

import (
	"context"
	"errors"
	"strings"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// ErrInvalidStore indicates a store submission with a missing name or address.
var ErrInvalidStore = errors.New("store name and address are required")

// StoreService encapsulates store management use cases.
type StoreService struct {
	stores domain.StoreRepository
}

// NewStoreService creates a StoreService backed by the given repository.
func NewStoreService(stores domain.StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

// Create validates and stores a new store.
func (s *StoreService) Create(ctx context.Context, userID int64, name, address string, lat, lng float64) (*domain.Store, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return nil, ErrInvalidStore
	}
	return s.stores.CreateStore(ctx, domain.Store{
		UserID:    userID,
		Name:      name,
		Address:   address,
		Latitude:  lat,
		Longitude: lng,
	})
}

// List returns the user's stores.
func (s *StoreService) List(ctx context.Context, userID int64) ([]domain.Store, error) {
	return s.stores.ListStoresByUser(ctx, userID)
}

// Get returns one store.
func (s *StoreService) Get(ctx context.Context, userID int64, id string) (*domain.Store, error) {
	store, err := s.stores.GetStoreByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}
