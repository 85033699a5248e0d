// Package catalog provides the built-in read-only product catalog.
package catalog

import (
	"strings"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// Memory is an in-memory catalog seeded with the built-in product list.
type Memory struct {
	products []domain.CatalogProduct
	byID     map[string]int
}

var _ domain.Catalog = (*Memory)(nil)

// New returns a catalog containing the built-in products.
func New() *Memory {
	return NewWith(seed)
}

// NewWith returns a catalog over the given entries.
func NewWith(products []domain.CatalogProduct) *Memory {
	m := &Memory{
		products: make([]domain.CatalogProduct, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(m.products, products)
	for i, p := range m.products {
		m.byID[p.ID] = i
	}
	return m
}

// GetByID returns the catalog entry with the given ID, or nil.
func (m *Memory) GetByID(id string) *domain.CatalogProduct {
	i, ok := m.byID[id]
	if !ok {
		return nil
	}
	p := m.products[i]
	return &p
}

// GetAll returns every catalog entry.
func (m *Memory) GetAll() []domain.CatalogProduct {
	out := make([]domain.CatalogProduct, len(m.products))
	copy(out, m.products)
	return out
}

// Search returns entries whose name contains term (case-insensitive) or
// whose PLU code starts with it. An empty term matches nothing.
func (m *Memory) Search(term string) []domain.CatalogProduct {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	lower := strings.ToLower(term)

	var out []domain.CatalogProduct
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			(p.PLUCode != "" && strings.HasPrefix(p.PLUCode, term)) {
			out = append(out, p)
		}
	}
	return out
}
