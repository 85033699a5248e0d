package domain

import (
	"context"
	"time"
)

// StoreRef is the denormalized store attribution carried on a product's
// lowest-price aggregate.
type StoreRef struct {
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
}

// Product is a user-scoped tracked grocery item with its running price
// aggregates. Aggregates are mutated only through ApplyObservation inside a
// repository transaction.
type Product struct {
	ID          string `json:"id"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ImageType   string `json:"imageType"`
	ImageSource string `json:"imageSource"`
	PLUCode     string `json:"pluCode"`
	Barcode     string `json:"barcode"`
	// LibraryRef links to a shared read-only catalog entry, if the product
	// was created from one.
	LibraryRef string `json:"libraryRef,omitempty"`

	TotalPrice        float64   `json:"totalPrice"`
	AveragePrice      float64   `json:"averagePrice"`
	LowestPrice       float64   `json:"lowestPrice"`
	HighestPrice      float64   `json:"highestPrice"`
	LowestPriceStore  StoreRef  `json:"lowestPriceStore"`
	TotalPriceRecords int       `json:"totalPriceRecords"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ProductRepository is the port for user product persistence.
type ProductRepository interface {
	CreateProduct(ctx context.Context, p Product) (*Product, error)
	GetProductByID(ctx context.Context, userID int64, id string) (*Product, error)
	ListProductsByUser(ctx context.Context, userID int64) ([]Product, error)
	// FindProductByName matches an existing product by exact, case-insensitive name.
	FindProductByName(ctx context.Context, userID int64, name string) (*Product, error)
	// FindProductByLibraryRef matches an existing product by its catalog link.
	FindProductByLibraryRef(ctx context.Context, userID int64, ref string) (*Product, error)
	RenameProduct(ctx context.Context, userID int64, id, name string) error
	// UpdateProductAggregates runs fn against the current persisted product
	// inside a single transaction, so the read-modify-write of the aggregate
	// fields cannot lose concurrent updates. It returns the product as written.
	UpdateProductAggregates(ctx context.Context, userID int64, id string, fn func(*Product) error) (*Product, error)
	DeleteProduct(ctx context.Context, userID int64, id string) error
}
