// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	products map[string]domain.Product
	records  map[string]domain.PriceRecord
	stores   map[string]domain.Store
	lists    map[string]domain.ShoppingList
	users    []*domain.User
	sessions map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		products: make(map[string]domain.Product),
		records:  make(map[string]domain.PriceRecord),
		stores:   make(map[string]domain.Store),
		lists:    make(map[string]domain.ShoppingList),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.ProductRepository = (*DB)(nil)
var _ domain.PriceRecordRepository = (*DB)(nil)
var _ domain.StoreRepository = (*DB)(nil)
var _ domain.ShoppingListRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- ProductRepository ---

// CreateProduct stores a new product.
func (db *DB) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	db.products[p.ID] = p
	return &p, nil
}

// GetProductByID returns a product by ID, or nil.
func (db *DB) GetProductByID(ctx context.Context, userID int64, id string) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.getProduct(userID, id), nil
}

func (db *DB) getProduct(userID int64, id string) *domain.Product {
	p, ok := db.products[id]
	if !ok || p.UserID != userID {
		return nil
	}
	cp := p
	return &cp
}

// ListProductsByUser returns the user's products, newest first.
func (db *DB) ListProductsByUser(ctx context.Context, userID int64) ([]domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.Product
	for _, p := range db.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// FindProductByName matches a product by exact, case-insensitive name.
func (db *DB) FindProductByName(ctx context.Context, userID int64, name string) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, p := range db.products {
		if p.UserID == userID && strings.EqualFold(p.Name, name) {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// FindProductByLibraryRef matches a product by its catalog link.
func (db *DB) FindProductByLibraryRef(ctx context.Context, userID int64, ref string) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, p := range db.products {
		if p.UserID == userID && p.LibraryRef != "" && p.LibraryRef == ref {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// RenameProduct updates a product's name.
func (db *DB) RenameProduct(ctx context.Context, userID int64, id, name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.products[id]
	if !ok || p.UserID != userID {
		return errors.New("product not found")
	}
	p.Name = name
	p.UpdatedAt = time.Now().UTC()
	db.products[id] = p
	return nil
}

// UpdateProductAggregates runs fn against the stored product under the
// store lock, making the read-modify-write atomic.
func (db *DB) UpdateProductAggregates(ctx context.Context, userID int64, id string, fn func(*domain.Product) error) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.products[id]
	if !ok || p.UserID != userID {
		return nil, errors.New("product not found")
	}
	if err := fn(&p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	db.products[id] = p
	cp := p
	return &cp, nil
}

// DeleteProduct removes a product.
func (db *DB) DeleteProduct(ctx context.Context, userID int64, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.products[id]
	if !ok || p.UserID != userID {
		return errors.New("product not found")
	}
	delete(db.products, id)
	return nil
}

// --- PriceRecordRepository ---

// CreatePriceRecord stores a new price record.
func (db *DB) CreatePriceRecord(ctx context.Context, rec domain.PriceRecord) (*domain.PriceRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec.ID = uuid.NewString()
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now().UTC()
	} else {
		rec.RecordedAt = rec.RecordedAt.UTC()
	}
	db.records[rec.ID] = rec
	return &rec, nil
}

// GetPriceRecordByID returns a price record by ID, or nil.
func (db *DB) GetPriceRecordByID(ctx context.Context, userID int64, id string) (*domain.PriceRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.records[id]
	if !ok || rec.UserID != userID {
		return nil, nil
	}
	cp := rec
	return &cp, nil
}

// ListPriceRecordsByProduct returns a product's records, most recent first.
func (db *DB) ListPriceRecordsByProduct(ctx context.Context, userID int64, productID string, limit int) ([]domain.PriceRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.PriceRecord
	for _, rec := range db.records {
		if rec.UserID == userID && rec.UserProductID == productID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UpdatePriceRecordMeta patches a record's store and photo URL.
func (db *DB) UpdatePriceRecordMeta(ctx context.Context, userID int64, id, storeID, photoURL string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.records[id]
	if !ok || rec.UserID != userID {
		return errors.New("record not found")
	}
	rec.StoreID = storeID
	rec.PhotoURL = photoURL
	db.records[id] = rec
	return nil
}

// DeletePriceRecordsByProduct removes all of a product's records.
func (db *DB) DeletePriceRecordsByProduct(ctx context.Context, userID int64, productID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for id, rec := range db.records {
		if rec.UserID == userID && rec.UserProductID == productID {
			delete(db.records, id)
		}
	}
	return nil
}

// --- StoreRepository ---

// CreateStore stores a new store.
func (db *DB) CreateStore(ctx context.Context, s domain.Store) (*domain.Store, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	db.stores[s.ID] = s
	return &s, nil
}

// GetStoreByID returns a store by ID, or nil.
func (db *DB) GetStoreByID(ctx context.Context, userID int64, id string) (*domain.Store, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, ok := db.stores[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

// ListStoresByUser returns the user's stores, newest first.
func (db *DB) ListStoresByUser(ctx context.Context, userID int64) ([]domain.Store, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.Store
	for _, s := range db.stores {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// --- ShoppingListRepository ---

// CreateShoppingList stores a new shopping list.
func (db *DB) CreateShoppingList(ctx context.Context, l domain.ShoppingList) (*domain.ShoppingList, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC()
	l.Items = copyItems(l.Items)
	db.lists[l.ID] = l
	cp := l
	cp.Items = copyItems(l.Items)
	return &cp, nil
}

// GetShoppingListByID returns a shopping list by ID, or nil.
func (db *DB) GetShoppingListByID(ctx context.Context, userID int64, id string) (*domain.ShoppingList, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, ok := db.lists[id]
	if !ok || l.UserID != userID {
		return nil, nil
	}
	cp := l
	cp.Items = copyItems(l.Items)
	return &cp, nil
}

// ListShoppingListsByUser returns the user's shopping lists, newest first.
func (db *DB) ListShoppingListsByUser(ctx context.Context, userID int64) ([]domain.ShoppingList, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.ShoppingList
	for _, l := range db.lists {
		if l.UserID == userID {
			cp := l
			cp.Items = copyItems(l.Items)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateShoppingListItems replaces a list's items.
func (db *DB) UpdateShoppingListItems(ctx context.Context, userID int64, id string, items []domain.ShoppingItem) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, ok := db.lists[id]
	if !ok || l.UserID != userID {
		return errors.New("shopping list not found")
	}
	l.Items = copyItems(items)
	db.lists[id] = l
	return nil
}

// DeleteShoppingList removes a shopping list.
func (db *DB) DeleteShoppingList(ctx context.Context, userID int64, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, ok := db.lists[id]
	if !ok || l.UserID != userID {
		return errors.New("shopping list not found")
	}
	delete(db.lists, id)
	return nil
}

func copyItems(items []domain.ShoppingItem) []domain.ShoppingItem {
	if items == nil {
		return nil
	}
	cp := make([]domain.ShoppingItem, len(items))
	copy(cp, items)
	return cp
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetUserByID retrieves a user by ID.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// CreateUser creates a new user.
func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// CountUsers returns the total number of users.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
