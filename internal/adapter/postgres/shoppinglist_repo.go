package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

const shoppingListCols = "id, user_id, name, items, store_id, planned_for, created_at"

// Items are stored as one JSONB document; they are only ever read and
// replaced as a whole list.
func scanShoppingList(row rowScanner) (*domain.ShoppingList, error) {
	var (
		l          domain.ShoppingList
		items      []byte
		plannedFor sql.NullTime
	)
	err := row.Scan(&l.ID, &l.UserID, &l.Name, &items, &l.StoreID, &plannedFor, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &l.Items); err != nil {
		return nil, err
	}
	if plannedFor.Valid {
		t := plannedFor.Time
		l.PlannedFor = &t
	}
	return &l, nil
}

// CreateShoppingList inserts a new shopping list.
func (d *DB) CreateShoppingList(ctx context.Context, l domain.ShoppingList) (*domain.ShoppingList, error) {
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC()

	items, err := json.Marshal(l.Items)
	if err != nil {
		return nil, err
	}
	var plannedFor sql.NullTime
	if l.PlannedFor != nil {
		plannedFor = sql.NullTime{Time: *l.PlannedFor, Valid: true}
	}

	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO shopping_lists(id, user_id, name, items, store_id, planned_for, created_at) VALUES($1,$2,$3,$4,$5,$6,$7);",
		l.ID, l.UserID, l.Name, items, l.StoreID, plannedFor, l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetShoppingListByID retrieves a shopping list owned by the given user.
func (d *DB) GetShoppingListByID(ctx context.Context, userID int64, id string) (*domain.ShoppingList, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+shoppingListCols+" FROM shopping_lists WHERE user_id = $1 AND id = $2;",
		userID, id,
	)
	return scanShoppingList(row)
}

// ListShoppingListsByUser returns all shopping lists for a user, newest first.
func (d *DB) ListShoppingListsByUser(ctx context.Context, userID int64) ([]domain.ShoppingList, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+shoppingListCols+" FROM shopping_lists WHERE user_id = $1 ORDER BY created_at DESC;",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ShoppingList
	for rows.Next() {
		l, err := scanShoppingList(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

// UpdateShoppingListItems replaces a list's items.
func (d *DB) UpdateShoppingListItems(ctx context.Context, userID int64, id string, items []domain.ShoppingItem) error {
	doc, err := json.Marshal(items)
	if err != nil {
		return err
	}
	res, err := d.sql.ExecContext(ctx,
		"UPDATE shopping_lists SET items = $3 WHERE user_id = $1 AND id = $2;",
		userID, id, doc,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("shopping list not found")
	}
	return nil
}

// DeleteShoppingList removes a shopping list.
func (d *DB) DeleteShoppingList(ctx context.Context, userID int64, id string) error {
	res, err := d.sql.ExecContext(ctx,
		"DELETE FROM shopping_lists WHERE user_id = $1 AND id = $2;",
		userID, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("shopping list not found")
	}
	return nil
}
