// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

const productCols = "id, user_id, name, category, image_type, image_source, plu_code, barcode, library_ref, total_price, average_price, lowest_price, highest_price, lowest_price_store_id, lowest_price_store_name, total_price_records, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Category, &p.ImageType, &p.ImageSource,
		&p.PLUCode, &p.Barcode, &p.LibraryRef,
		&p.TotalPrice, &p.AveragePrice, &p.LowestPrice, &p.HighestPrice,
		&p.LowestPriceStore.StoreID, &p.LowestPriceStore.StoreName,
		&p.TotalPriceRecords, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct inserts a new user product.
func (d *DB) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO user_products("+productCols+") VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18);",
		p.ID, p.UserID, p.Name, p.Category, p.ImageType, p.ImageSource,
		p.PLUCode, p.Barcode, p.LibraryRef,
		p.TotalPrice, p.AveragePrice, p.LowestPrice, p.HighestPrice,
		p.LowestPriceStore.StoreID, p.LowestPriceStore.StoreName,
		p.TotalPriceRecords, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProductByID retrieves a product owned by the given user.
func (d *DB) GetProductByID(ctx context.Context, userID int64, id string) (*domain.Product, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM user_products WHERE user_id = $1 AND id = $2;",
		userID, id,
	)
	return scanProduct(row)
}

// ListProductsByUser returns all products for a user, newest first.
func (d *DB) ListProductsByUser(ctx context.Context, userID int64) ([]domain.Product, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+productCols+" FROM user_products WHERE user_id = $1 ORDER BY created_at DESC;",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// FindProductByName matches an existing product by exact, case-insensitive name.
func (d *DB) FindProductByName(ctx context.Context, userID int64, name string) (*domain.Product, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM user_products WHERE user_id = $1 AND LOWER(name) = LOWER($2) LIMIT 1;",
		userID, name,
	)
	return scanProduct(row)
}

// FindProductByLibraryRef matches an existing product by its catalog link.
func (d *DB) FindProductByLibraryRef(ctx context.Context, userID int64, ref string) (*domain.Product, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM user_products WHERE user_id = $1 AND library_ref = $2 LIMIT 1;",
		userID, ref,
	)
	return scanProduct(row)
}

// RenameProduct updates a product's display name.
func (d *DB) RenameProduct(ctx context.Context, userID int64, id, name string) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE user_products SET name = $3, updated_at = $4 WHERE user_id = $1 AND id = $2;",
		userID, id, name, time.Now().UTC(),
	)
	return err
}

// UpdateProductAggregates applies fn to the stored product inside a
// transaction, locking the row so concurrent observations serialize.
func (d *DB) UpdateProductAggregates(ctx context.Context, userID int64, id string, fn func(*domain.Product) error) (*domain.Product, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM user_products WHERE user_id = $1 AND id = $2 FOR UPDATE;",
		userID, id,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("product not found")
	}

	if err := fn(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`UPDATE user_products SET
			total_price = $3, average_price = $4, lowest_price = $5, highest_price = $6,
			lowest_price_store_id = $7, lowest_price_store_name = $8,
			total_price_records = $9, updated_at = $10
		WHERE user_id = $1 AND id = $2;`,
		userID, id,
		p.TotalPrice, p.AveragePrice, p.LowestPrice, p.HighestPrice,
		p.LowestPriceStore.StoreID, p.LowestPriceStore.StoreName,
		p.TotalPriceRecords, p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes a product owned by the given user.
func (d *DB) DeleteProduct(ctx context.Context, userID int64, id string) error {
	_, err := d.sql.ExecContext(ctx,
		"DELETE FROM user_products WHERE user_id = $1 AND id = $2;", userID, id)
	return err
}
