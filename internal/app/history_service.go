package app

import (
	"context"
	"time"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// HistoryService encapsulates price history retrieval use cases.
type HistoryService struct {
	products domain.ProductRepository
	records  domain.PriceRecordRepository
}

// NewHistoryService creates a HistoryService backed by the given repositories.
func NewHistoryService(products domain.ProductRepository, records domain.PriceRecordRepository) *HistoryService {
	return &HistoryService{products: products, records: records}
}

// PricePoint is a single data point returned by History.
type PricePoint struct {
	RecordID   string  `json:"recordId"`
	StoreID    string  `json:"storeId"`
	RecordedAt string  `json:"recordedAt"`
	UnitPrice  float64 `json:"unitPrice"`
	Unit       string  `json:"unit"`
}

// History returns a product's price records re-expressed as a price per
// displayUnit, most recent first. Records whose unit belongs to a different
// dimension than displayUnit are skipped; their prices are not comparable.
func (s *HistoryService) History(ctx context.Context, userID int64, productID, displayUnit string, limit int) ([]PricePoint, error) {
	if _, err := domain.Classify(displayUnit); err != nil {
		return nil, err
	}

	p, err := s.products.GetProductByID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	recs, err := s.records.ListPriceRecordsByProduct(ctx, userID, productID, limit)
	if err != nil {
		return nil, err
	}

	points := make([]PricePoint, 0, len(recs))
	for _, rec := range recs {
		val, err := domain.ConvertUnitPrice(rec.StandardUnitPrice.InexactFloat64(), rec.OriginalUnit, displayUnit)
		if err != nil {
			continue
		}
		points = append(points, PricePoint{
			RecordID:   rec.ID,
			StoreID:    rec.StoreID,
			RecordedAt: rec.RecordedAt.UTC().Format(time.RFC3339),
			UnitPrice:  val,
			Unit:       displayUnit,
		})
	}
	return points, nil
}
