// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

var (
	// ErrProductNotFound indicates the requested product does not exist for
	// this user.
	ErrProductNotFound = errors.New("product not found")
	// ErrStoreNotFound indicates the referenced store does not exist for
	// this user.
	ErrStoreNotFound = errors.New("store not found")
)

// Image placeholder for products created from free text alone.
const (
	defaultImageType   = "emoji"
	defaultImageSource = "🛒"
)

// ProductCandidate identifies the product a purchase should attach to:
// a catalog reference, a free-text name, or both.
type ProductCandidate struct {
	CatalogRef   string
	FreeTextName string
}

// ProductService encapsulates product resolution and management use cases.
type ProductService struct {
	products domain.ProductRepository
	records  domain.PriceRecordRepository
	catalog  domain.Catalog
}

// NewProductService creates a ProductService backed by the given
// repositories and catalog.
func NewProductService(products domain.ProductRepository, records domain.PriceRecordRepository, catalog domain.Catalog) *ProductService {
	return &ProductService{products: products, records: records, catalog: catalog}
}

// Resolve maps a candidate to the single user product a purchase should
// attach to, creating one if none matches. The match order is deliberate:
// a name match wins over a catalog-link match, because a user who renamed a
// product away from its catalog default signalled stronger intent with the
// name. The returned bool reports whether a product was created.
func (s *ProductService) Resolve(ctx context.Context, userID int64, cand ProductCandidate) (*domain.Product, bool, error) {
	name := strings.TrimSpace(cand.FreeTextName)
	if name == "" && cand.CatalogRef == "" {
		return nil, false, domain.ErrNoProductIdentity
	}

	if name != "" {
		p, err := s.products.FindProductByName(ctx, userID, name)
		if err != nil {
			return nil, false, err
		}
		if p != nil {
			return p, false, nil
		}
	}

	if cand.CatalogRef != "" {
		p, err := s.products.FindProductByLibraryRef(ctx, userID, cand.CatalogRef)
		if err != nil {
			return nil, false, err
		}
		if p != nil {
			return p, false, nil
		}

		if entry := s.catalog.GetByID(cand.CatalogRef); entry != nil {
			created, err := s.products.CreateProduct(ctx, domain.Product{
				UserID:      userID,
				Name:        entry.Name,
				Category:    entry.Category,
				ImageType:   entry.ImageType,
				ImageSource: entry.ImageSource,
				PLUCode:     entry.PLUCode,
				Barcode:     entry.Barcode,
				LibraryRef:  entry.ID,
			})
			if err != nil {
				return nil, false, err
			}
			return created, true, nil
		}
	}

	if name == "" {
		// A catalog ref that resolves to nothing carries no usable identity.
		return nil, false, domain.ErrNoProductIdentity
	}

	created, err := s.products.CreateProduct(ctx, domain.Product{
		UserID:      userID,
		Name:        name,
		ImageType:   defaultImageType,
		ImageSource: defaultImageSource,
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// List returns the user's products with their running aggregates.
func (s *ProductService) List(ctx context.Context, userID int64) ([]domain.Product, error) {
	return s.products.ListProductsByUser(ctx, userID)
}

// Get returns one product with its most recent price records.
func (s *ProductService) Get(ctx context.Context, userID int64, id string, recordLimit int) (*domain.Product, []domain.PriceRecord, error) {
	p, err := s.products.GetProductByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrProductNotFound
	}
	recs, err := s.records.ListPriceRecordsByProduct(ctx, userID, id, recordLimit)
	if err != nil {
		return nil, nil, err
	}
	return p, recs, nil
}

// Rename changes a product's display name. The product keeps its catalog
// link and aggregates; future purchases under the new name still resolve to
// it (name continuity).
func (s *ProductService) Rename(ctx context.Context, userID int64, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrNoProductIdentity
	}
	p, err := s.products.GetProductByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	return s.products.RenameProduct(ctx, userID, id, name)
}

// Delete removes a product and cascades to its price records. The running
// aggregates disappear with the product; there is no partial recomputation.
func (s *ProductService) Delete(ctx context.Context, userID int64, id string) error {
	p, err := s.products.GetProductByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	if err := s.records.DeletePriceRecordsByProduct(ctx, userID, id); err != nil {
		return err
	}
	return s.products.DeleteProduct(ctx, userID, id)
}
