package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mystore/storefront/internal/domain"
)

// CatalogService reads the product catalog from the remote store API and
// applies the client-side name filter.
type CatalogService struct {
	products domain.ProductSource
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products domain.ProductSource) *CatalogService {
	return &CatalogService{products: products}
}

// List fetches the full product list. No pagination, no caching.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// Search fetches the product list and filters it by term.
func (s *CatalogService) Search(ctx context.Context, term string) ([]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, term), nil
}

// Find returns the product with the given id, or domain.ErrNotFound. The
// store API exposes no single-product endpoint, so this scans the list.
func (s *CatalogService) Find(ctx context.Context, id int64) (*domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
}

// Filter keeps the products whose name contains term, case-insensitively.
// An empty term keeps everything.
func Filter(products []domain.Product, term string) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched
}
