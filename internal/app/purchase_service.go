package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

var (
	// ErrRecordNotFound indicates the requested price record does not exist
	// for this user.
	ErrRecordNotFound = errors.New("price record not found")
	// ErrRecordContributed rejects changing or deleting a record that has
	// already contributed to a product's running aggregates. The aggregates
	// keep no history, so they cannot be reconciled after the fact.
	ErrRecordContributed = errors.New("record already contributed to product aggregates")
)

// ProductPublisher receives product snapshots after their aggregates change.
type ProductPublisher interface {
	PublishProduct(userID int64, p domain.Product)
}

// PurchaseInput is one purchase submission. Price and Quantity arrive as
// decimals so the persisted record preserves the user's exact input.
type PurchaseInput struct {
	ProductName string
	CatalogRef  string
	StoreID     string
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	Unit        string
	PhotoURL    string
	Currency    string
}

// RecordPatch carries the fields an edit may touch. Price, quantity and
// unit are present so the service can reject them explicitly rather than
// silently ignore them.
type RecordPatch struct {
	StoreID  *string
	PhotoURL *string
	Price    *decimal.Decimal
	Quantity *decimal.Decimal
	Unit     *string
}

// PurchaseService runs the purchase pipeline: normalize the price, resolve
// the product, append the record, and fold the observation into the
// product's running aggregates as one transactional unit.
type PurchaseService struct {
	resolver *ProductService
	products domain.ProductRepository
	records  domain.PriceRecordRepository
	stores   domain.StoreRepository
	pub      ProductPublisher
}

// NewPurchaseService creates a PurchaseService. pub may be nil.
func NewPurchaseService(resolver *ProductService, products domain.ProductRepository,
	records domain.PriceRecordRepository, stores domain.StoreRepository, pub ProductPublisher) *PurchaseService {
	return &PurchaseService{
		resolver: resolver,
		products: products,
		records:  records,
		stores:   stores,
		pub:      pub,
	}
}

// RecordPurchase validates and stores one purchase. All validation happens
// before any write; if the standard price cannot be computed, nothing is
// persisted. The aggregate update runs inside the product repository's
// transaction, so concurrent purchases for the same product cannot lose
// updates. The observation folded into the aggregates is the standard unit
// price, the cross-store comparable value.
func (s *PurchaseService) RecordPurchase(ctx context.Context, userID int64, in PurchaseInput) (*domain.PriceRecord, *domain.Product, error) {
	stdPrice, err := domain.StandardUnitPrice(in.Price.InexactFloat64(), in.Quantity.InexactFloat64(), in.Unit)
	if err != nil {
		return nil, nil, err
	}

	store, err := s.stores.GetStoreByID(ctx, userID, in.StoreID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if store == nil {
		return nil, nil, ErrStoreNotFound
	}

	product, _, err := s.resolver.Resolve(ctx, userID, ProductCandidate{
		CatalogRef:   in.CatalogRef,
		FreeTextName: in.ProductName,
	})
	if err != nil {
		return nil, nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "$"
	}
	rec, err := s.records.CreatePriceRecord(ctx, domain.PriceRecord{
		UserID:            userID,
		UserProductID:     product.ID,
		StoreID:           store.ID,
		OriginalPrice:     in.Price,
		OriginalQuantity:  in.Quantity,
		OriginalUnit:      in.Unit,
		StandardUnitPrice: decimal.NewFromFloat(stdPrice),
		PhotoURL:          in.PhotoURL,
		Currency:          currency,
		RecordedAt:        time.Now().UTC(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	updated, err := s.products.UpdateProductAggregates(ctx, userID, product.ID, func(p *domain.Product) error {
		*p = domain.ApplyObservation(*p, domain.PriceObservation{
			Value: stdPrice,
			Store: domain.StoreRef{StoreID: store.ID, StoreName: store.Name},
		})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if s.pub != nil {
		s.pub.PublishProduct(userID, *updated)
	}
	return rec, updated, nil
}

// GetRecord returns one price record.
func (s *PurchaseService) GetRecord(ctx context.Context, userID int64, id string) (*domain.PriceRecord, error) {
	rec, err := s.records.GetPriceRecordByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

// ListRecords returns a product's records, most recent first.
func (s *PurchaseService) ListRecords(ctx context.Context, userID int64, productID string, limit int) ([]domain.PriceRecord, error) {
	return s.records.ListPriceRecordsByProduct(ctx, userID, productID, limit)
}

// EditRecord patches a record's store or photo. Changing the price,
// quantity or unit of a record that already fed the aggregates is refused.
func (s *PurchaseService) EditRecord(ctx context.Context, userID int64, id string, patch RecordPatch) (*domain.PriceRecord, error) {
	if patch.Price != nil || patch.Quantity != nil || patch.Unit != nil {
		return nil, ErrRecordContributed
	}

	rec, err := s.records.GetPriceRecordByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}

	storeID := rec.StoreID
	if patch.StoreID != nil {
		store, err := s.stores.GetStoreByID(ctx, userID, *patch.StoreID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		if store == nil {
			return nil, ErrStoreNotFound
		}
		storeID = store.ID
	}
	photoURL := rec.PhotoURL
	if patch.PhotoURL != nil {
		photoURL = *patch.PhotoURL
	}

	if err := s.records.UpdatePriceRecordMeta(ctx, userID, id, storeID, photoURL); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	rec.StoreID = storeID
	rec.PhotoURL = photoURL
	return rec, nil
}

// DeleteRecord always refuses: a contributed observation cannot be backed
// out of the running aggregates. Records are removed only by deleting their
// product, which drops the aggregates with them.
func (s *PurchaseService) DeleteRecord(ctx context.Context, userID int64, id string) error {
	rec, err := s.records.GetPriceRecordByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrRecordNotFound
	}
	return ErrRecordContributed
}
