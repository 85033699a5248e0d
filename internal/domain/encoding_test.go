package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

func TestPriceRecordJSONRoundTrip(t *testing.T) {
	orig := domain.PriceRecord{
		ID:                "rec-1",
		UserID:            1,
		UserProductID:     "prod-1",
		StoreID:           "store-1",
		OriginalPrice:     decimal.RequireFromString("12.30"),
		OriginalQuantity:  decimal.RequireFromString("3"),
		OriginalUnit:      "lb",
		StandardUnitPrice: decimal.RequireFromString("0.00881834215167548"),
		PhotoURL:          "https://example.com/receipt.jpg",
		Currency:          "$",
		RecordedAt:        time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got domain.PriceRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != orig.ID || got.UserID != orig.UserID ||
		got.UserProductID != orig.UserProductID || got.StoreID != orig.StoreID {
		t.Errorf("identity fields changed: got %+v", got)
	}
	if got.OriginalUnit != orig.OriginalUnit || got.PhotoURL != orig.PhotoURL || got.Currency != orig.Currency {
		t.Errorf("meta fields changed: got %+v", got)
	}
	if !got.RecordedAt.Equal(orig.RecordedAt) {
		t.Errorf("recordedAt = %v; want %v", got.RecordedAt, orig.RecordedAt)
	}

	// Decimal fields must survive exactly, down to the representation: the
	// trailing zero in "12.30" is the user's input and must not be dropped.
	if got.OriginalPrice.String() != "12.30" {
		t.Errorf("originalPrice = %q; want %q", got.OriginalPrice.String(), "12.30")
	}
	if !got.OriginalQuantity.Equal(orig.OriginalQuantity) {
		t.Errorf("originalQuantity = %v; want %v", got.OriginalQuantity, orig.OriginalQuantity)
	}
	if !got.StandardUnitPrice.Equal(orig.StandardUnitPrice) {
		t.Errorf("standardUnitPrice = %v; want %v", got.StandardUnitPrice, orig.StandardUnitPrice)
	}
}

func TestProductJSONRoundTrip(t *testing.T) {
	orig := domain.Product{
		ID:          "prod-1",
		UserID:      1,
		Name:        "Banana",
		Category:    "Produce",
		ImageType:   "emoji",
		ImageSource: "🍌",
		PLUCode:     "4011",
		LibraryRef:  "cat-banana",

		TotalPrice:        35,
		AveragePrice:      11.666666666666666,
		LowestPrice:       5,
		HighestPrice:      20,
		LowestPriceStore:  domain.StoreRef{StoreID: "store-a", StoreName: "Store A"},
		TotalPriceRecords: 3,
		CreatedAt:         time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2026, 8, 2, 18, 45, 0, 0, time.UTC),
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got domain.Product
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != orig.ID || got.UserID != orig.UserID || got.Name != orig.Name ||
		got.Category != orig.Category || got.ImageType != orig.ImageType ||
		got.ImageSource != orig.ImageSource || got.PLUCode != orig.PLUCode ||
		got.Barcode != orig.Barcode || got.LibraryRef != orig.LibraryRef {
		t.Errorf("identity fields changed: got %+v", got)
	}
	if got.TotalPrice != orig.TotalPrice || got.AveragePrice != orig.AveragePrice ||
		got.LowestPrice != orig.LowestPrice || got.HighestPrice != orig.HighestPrice ||
		got.TotalPriceRecords != orig.TotalPriceRecords {
		t.Errorf("aggregate fields changed: got %+v", got)
	}
	if got.LowestPriceStore != orig.LowestPriceStore {
		t.Errorf("lowestPriceStore = %+v; want %+v", got.LowestPriceStore, orig.LowestPriceStore)
	}
	if !got.CreatedAt.Equal(orig.CreatedAt) || !got.UpdatedAt.Equal(orig.UpdatedAt) {
		t.Errorf("timestamps changed: got %v / %v", got.CreatedAt, got.UpdatedAt)
	}
}
