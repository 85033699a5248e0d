package domain

import (
	"context"
	"time"
)

// ShoppingItem is one planned purchase on a shopping list.
type ShoppingItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Checked  bool   `json:"checked"`
}

// ShoppingList is a user-scoped planned shopping trip: a named set of items
// with quantities, optionally pinned to a store and a planned time.
type ShoppingList struct {
	ID         string         `json:"id"`
	UserID     int64          `json:"userId"`
	Name       string         `json:"name"`
	Items      []ShoppingItem `json:"items"`
	StoreID    string         `json:"storeId,omitempty"`
	PlannedFor *time.Time     `json:"plannedFor,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ShoppingListRepository is the port for shopping list persistence.
type ShoppingListRepository interface {
	CreateShoppingList(ctx context.Context, l ShoppingList) (*ShoppingList, error)
	GetShoppingListByID(ctx context.Context, userID int64, id string) (*ShoppingList, error)
	ListShoppingListsByUser(ctx context.Context, userID int64) ([]ShoppingList, error)
	// UpdateShoppingListItems replaces a list's items wholesale.
	UpdateShoppingListItems(ctx context.Context, userID int64, id string, items []ShoppingItem) error
	DeleteShoppingList(ctx context.Context, userID int64, id string) error
}
