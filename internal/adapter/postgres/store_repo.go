package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// CreateStore inserts a new store.
func (d *DB) CreateStore(ctx context.Context, s domain.Store) (*domain.Store, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()

	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO stores(id, user_id, name, address, latitude, longitude, created_at) VALUES($1,$2,$3,$4,$5,$6,$7);",
		s.ID, s.UserID, s.Name, s.Address, s.Latitude, s.Longitude, s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetStoreByID retrieves a store owned by the given user.
func (d *DB) GetStoreByID(ctx context.Context, userID int64, id string) (*domain.Store, error) {
	var s domain.Store
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, name, address, latitude, longitude, created_at FROM stores WHERE user_id = $1 AND id = $2;",
		userID, id,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListStoresByUser returns all stores for a user, newest first.
func (d *DB) ListStoresByUser(ctx context.Context, userID int64) ([]domain.Store, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, name, address, latitude, longitude, created_at FROM stores WHERE user_id = $1 ORDER BY created_at DESC;",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Store
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
