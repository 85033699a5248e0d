package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

var (
	// ErrInvalidShoppingList indicates a list submission with a missing
	// name, no items, or an item with a blank name or non-positive quantity.
	ErrInvalidShoppingList = errors.New("shopping list needs a name and at least one valid item")
	// ErrShoppingListNotFound indicates the requested list does not exist
	// for this user.
	ErrShoppingListNotFound = errors.New("shopping list not found")
	// ErrShoppingItemNotFound indicates an item index outside the list.
	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)

// ShoppingListInput is one list submission. StoreID and PlannedFor are
// optional; items arrive unchecked.
type ShoppingListInput struct {
	Name       string
	Items      []domain.ShoppingItem
	StoreID    string
	PlannedFor *time.Time
}

// ShoppingListService encapsulates shopping list management use cases.
type ShoppingListService struct {
	lists  domain.ShoppingListRepository
	stores domain.StoreRepository
}

// NewShoppingListService creates a ShoppingListService backed by the given
// repositories.
func NewShoppingListService(lists domain.ShoppingListRepository, stores domain.StoreRepository) *ShoppingListService {
	return &ShoppingListService{lists: lists, stores: stores}
}

// CreateList validates and stores a new shopping list. Item names are
// trimmed, every item needs a positive quantity, and a referenced store
// must exist. Items always start unchecked.
func (s *ShoppingListService) CreateList(ctx context.Context, userID int64, in ShoppingListInput) (*domain.ShoppingList, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(in.Items) == 0 {
		return nil, ErrInvalidShoppingList
	}

	items := make([]domain.ShoppingItem, 0, len(in.Items))
	for _, it := range in.Items {
		itemName := strings.TrimSpace(it.Name)
		if itemName == "" || it.Quantity <= 0 {
			return nil, ErrInvalidShoppingList
		}
		items = append(items, domain.ShoppingItem{Name: itemName, Quantity: it.Quantity})
	}

	if in.StoreID != "" {
		store, err := s.stores.GetStoreByID(ctx, userID, in.StoreID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, ErrStoreNotFound
		}
	}

	return s.lists.CreateShoppingList(ctx, domain.ShoppingList{
		UserID:     userID,
		Name:       name,
		Items:      items,
		StoreID:    in.StoreID,
		PlannedFor: in.PlannedFor,
	})
}

// Get returns one shopping list.
func (s *ShoppingListService) Get(ctx context.Context, userID int64, id string) (*domain.ShoppingList, error) {
	l, err := s.lists.GetShoppingListByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrShoppingListNotFound
	}
	return l, nil
}

// List returns the user's shopping lists.
func (s *ShoppingListService) List(ctx context.Context, userID int64) ([]domain.ShoppingList, error) {
	return s.lists.ListShoppingListsByUser(ctx, userID)
}

// ToggleItem flips the checked state of the item at index and returns the
// updated list.
func (s *ShoppingListService) ToggleItem(ctx context.Context, userID int64, id string, index int) (*domain.ShoppingList, error) {
	l, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(l.Items) {
		return nil, ErrShoppingItemNotFound
	}
	l.Items[index].Checked = !l.Items[index].Checked
	if err := s.lists.UpdateShoppingListItems(ctx, userID, id, l.Items); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteList removes a shopping list.
func (s *ShoppingListService) DeleteList(ctx context.Context, userID int64, id string) error {
	l, err := s.lists.GetShoppingListByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrShoppingListNotFound
	}
	return s.lists.DeleteShoppingList(ctx, userID, id)
}
