package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is one purchase observation. Once normalized it is immutable
// except for its photo URL and store attribution; the price, quantity and
// unit of a record that has contributed to aggregates can no longer change.
type PriceRecord struct {
	ID            string `json:"id"`
	UserID        int64  `json:"userId"`
	UserProductID string `json:"userProductId"`
	StoreID       string `json:"storeId"`

	OriginalPrice     decimal.Decimal `json:"originalPrice"`
	OriginalQuantity  decimal.Decimal `json:"originalQuantity"`
	OriginalUnit      string          `json:"originalUnit"`
	StandardUnitPrice decimal.Decimal `json:"standardUnitPrice"`

	PhotoURL   string    `json:"photoUrl,omitempty"`
	Currency   string    `json:"currency"`
	RecordedAt time.Time `json:"recordedAt"`
}

// PriceRecordRepository is the port for price record persistence.
type PriceRecordRepository interface {
	CreatePriceRecord(ctx context.Context, rec PriceRecord) (*PriceRecord, error)
	GetPriceRecordByID(ctx context.Context, userID int64, id string) (*PriceRecord, error)
	// ListPriceRecordsByProduct returns a product's records, most recent first.
	ListPriceRecordsByProduct(ctx context.Context, userID int64, productID string, limit int) ([]PriceRecord, error)
	// UpdatePriceRecordMeta patches the only mutable fields of a record.
	UpdatePriceRecordMeta(ctx context.Context, userID int64, id, storeID, photoURL string) error
	// DeletePriceRecordsByProduct removes all records of a product
	// (product-deletion cascade).
	DeletePriceRecordsByProduct(ctx context.Context, userID int64, productID string) error
}
