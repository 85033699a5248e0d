package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	// Prices and quantities are stored as TEXT and parsed as decimals on the
	// way out, so stored amounts never pick up float rounding.
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, username TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, user_agent TEXT NOT NULL DEFAULT '', ip TEXT NOT NULL DEFAULT '', expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",
		"CREATE TABLE IF NOT EXISTS stores (id TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, name TEXT NOT NULL, address TEXT NOT NULL, latitude DOUBLE PRECISION NOT NULL DEFAULT 0, longitude DOUBLE PRECISION NOT NULL DEFAULT 0, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_stores_user_id ON stores(user_id);",
		"CREATE TABLE IF NOT EXISTS user_products (id TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, name TEXT NOT NULL, category TEXT NOT NULL DEFAULT '', image_type TEXT NOT NULL DEFAULT '', image_source TEXT NOT NULL DEFAULT '', plu_code TEXT NOT NULL DEFAULT '', barcode TEXT NOT NULL DEFAULT '', library_ref TEXT NOT NULL DEFAULT '', total_price DOUBLE PRECISION NOT NULL DEFAULT 0, average_price DOUBLE PRECISION NOT NULL DEFAULT 0, lowest_price DOUBLE PRECISION NOT NULL DEFAULT 0, highest_price DOUBLE PRECISION NOT NULL DEFAULT 0, lowest_price_store_id TEXT NOT NULL DEFAULT '', lowest_price_store_name TEXT NOT NULL DEFAULT '', total_price_records INTEGER NOT NULL DEFAULT 0, created_at TIMESTAMPTZ NOT NULL, updated_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_user_products_user_id ON user_products(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_products_name ON user_products(user_id, LOWER(name));",
		"CREATE INDEX IF NOT EXISTS idx_user_products_library_ref ON user_products(user_id, library_ref);",
		"CREATE TABLE IF NOT EXISTS price_records (id TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, user_product_id TEXT NOT NULL REFERENCES user_products(id) ON DELETE CASCADE, store_id TEXT NOT NULL DEFAULT '', original_price TEXT NOT NULL, original_quantity TEXT NOT NULL, original_unit TEXT NOT NULL, standard_unit_price TEXT NOT NULL, photo_url TEXT NOT NULL DEFAULT '', currency TEXT NOT NULL DEFAULT '', recorded_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_price_records_product ON price_records(user_id, user_product_id, recorded_at);",
		"CREATE TABLE IF NOT EXISTS shopping_lists (id TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, name TEXT NOT NULL, items JSONB NOT NULL DEFAULT '[]', store_id TEXT NOT NULL DEFAULT '', planned_for TIMESTAMPTZ, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_shopping_lists_user_id ON shopping_lists(user_id);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
