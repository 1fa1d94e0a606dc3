package catalog

import (
	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// Provider serves the static product catalog. Seeded once at construction,
// read-only for the process lifetime, so no locking is needed.
type Provider struct {
	products []domain.Product
	byID     map[string]*domain.Product
}

// NewProvider builds a provider over the given products, preserving order.
func NewProvider(products []domain.Product) *Provider {
	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &Provider{products: products, byID: byID}
}

// NewDefaultProvider builds a provider over the built-in storefront catalog.
func NewDefaultProvider() *Provider {
	return NewProvider(seedProducts())
}

// List returns the full ordered catalog.
func (p *Provider) List() []domain.Product {
	return p.products
}

// Get returns the product with the given id.
func (p *Provider) Get(id string) (*domain.Product, error) {
	product, ok := p.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("product", map[string]any{"id": id})
	}
	return product, nil
}
