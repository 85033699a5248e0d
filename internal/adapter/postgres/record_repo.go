package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

const recordCols = "id, user_id, user_product_id, store_id, original_price, original_quantity, original_unit, standard_unit_price, photo_url, currency, recorded_at"

func scanRecord(row rowScanner) (*domain.PriceRecord, error) {
	var (
		rec                       domain.PriceRecord
		price, quantity, stdPrice string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.UserProductID, &rec.StoreID,
		&price, &quantity, &rec.OriginalUnit, &stdPrice,
		&rec.PhotoURL, &rec.Currency, &rec.RecordedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if rec.OriginalPrice, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if rec.OriginalQuantity, err = decimal.NewFromString(quantity); err != nil {
		return nil, err
	}
	if rec.StandardUnitPrice, err = decimal.NewFromString(stdPrice); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreatePriceRecord inserts a new price record.
func (d *DB) CreatePriceRecord(ctx context.Context, rec domain.PriceRecord) (*domain.PriceRecord, error) {
	rec.ID = uuid.NewString()
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now().UTC()
	} else {
		rec.RecordedAt = rec.RecordedAt.UTC()
	}

	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO price_records("+recordCols+") VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11);",
		rec.ID, rec.UserID, rec.UserProductID, rec.StoreID,
		rec.OriginalPrice.String(), rec.OriginalQuantity.String(),
		rec.OriginalUnit, rec.StandardUnitPrice.String(),
		rec.PhotoURL, rec.Currency, rec.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetPriceRecordByID retrieves a record owned by the given user.
func (d *DB) GetPriceRecordByID(ctx context.Context, userID int64, id string) (*domain.PriceRecord, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+recordCols+" FROM price_records WHERE user_id = $1 AND id = $2;",
		userID, id,
	)
	return scanRecord(row)
}

// ListPriceRecordsByProduct returns a product's records, most recent first.
func (d *DB) ListPriceRecordsByProduct(ctx context.Context, userID int64, productID string, limit int) ([]domain.PriceRecord, error) {
	q := "SELECT " + recordCols + " FROM price_records WHERE user_id = $1 AND user_product_id = $2 ORDER BY recorded_at DESC"
	args := []any{userID, productID}
	if limit > 0 {
		q += " LIMIT $3"
		args = append(args, limit)
	}

	rows, err := d.sql.QueryContext(ctx, q+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PriceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// UpdatePriceRecordMeta patches the only mutable fields of a record.
func (d *DB) UpdatePriceRecordMeta(ctx context.Context, userID int64, id, storeID, photoURL string) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE price_records SET store_id = $3, photo_url = $4 WHERE user_id = $1 AND id = $2;",
		userID, id, storeID, photoURL,
	)
	return err
}

// DeletePriceRecordsByProduct removes all records of a product.
func (d *DB) DeletePriceRecordsByProduct(ctx context.Context, userID int64, productID string) error {
	_, err := d.sql.ExecContext(ctx,
		"DELETE FROM price_records WHERE user_id = $1 AND user_product_id = $2;",
		userID, productID,
	)
	return err
}
