package domain

// CatalogProduct is a shared, read-only catalog entry. It supplies defaults
// when a user product is first created from a catalog selection.
type CatalogProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ImageType   string `json:"imageType"`
	ImageSource string `json:"imageSource"`
	PLUCode     string `json:"pluCode"`
	Barcode     string `json:"barcode"`
}

// Catalog is the read-only catalog lookup collaborator. Implementations are
// in-memory or cached; lookups are synchronous.
type Catalog interface {
	GetByID(id string) *CatalogProduct
	GetAll() []CatalogProduct
	Search(term string) []CatalogProduct
}
