package domain

import (
	"context"
	"time"
)

// Store is a user-scoped grocery store referenced by price records.
type Store struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreRepository is the port for store persistence.
type StoreRepository interface {
	CreateStore(ctx context.Context, s Store) (*Store, error)
	GetStoreByID(ctx context.Context, userID int64, id string) (*Store, error)
	ListStoresByUser(ctx context.Context, userID int64) ([]Store, error)
}
