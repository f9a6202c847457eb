// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package catalog serves product listings and the filter aggregation
// backing the storefront's browse sidebar.
package catalog

import (
	"context"
	"fmt"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
)

// Service answers catalog queries.
type Service struct {
	repo *repository.Repository
}

// NewService creates a new Service instance.
func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all products.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts(ctx)
}

// ListByCategory returns the products in the given category.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.ListProductsByCategory(ctx, category)
}

// Get returns a single product; repository.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

// PriceRange is one bucket of the price filter. Max is nil for the
// open-ended top bucket.
type PriceRange struct {
	Name  string   `json:"name"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// Filters holds the unique filter options derived from the catalog.
type Filters struct {
	Brands      []models.BrandCount      `json:"brands"`
	Connections []models.ConnectionCount `json:"connections"`
	Types       []string                 `json:"types"`
	PriceRanges []PriceRange             `json:"price_ranges"`
}

// Filters aggregates the filter options: distinct brands and connection
// types with product counts, and price buckets emitted only where the
// catalog actually has products on both sides of the boundary.
func (s *Service) Filters(ctx context.Context) (*Filters, error) {
	brands, err := s.repo.BrandCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate brands: %w", err)
	}

	connections, err := s.repo.ConnectionCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate connections: %w", err)
	}

	priceRanges, err := s.priceRanges(ctx)
	if err != nil {
		return nil, err
	}

	return &Filters{
		Brands:      brands,
		Connections: connections,
		Types:       []string{},
		PriceRanges: priceRanges,
	}, nil
}

func (s *Service) priceRanges(ctx context.Context) ([]PriceRange, error) {
	minPrice, maxPrice, ok, err := s.repo.PriceBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read price bounds: %w", err)
	}

	if !ok {
		// Empty catalog: advertise the default buckets.
		return []PriceRange{
			{Name: "Under $100", Min: 0, Max: ptr(99.99)},
			{Name: "$100 - $300", Min: 100, Max: ptr(299.99)},
			{Name: "$300 - $500", Min: 300, Max: ptr(499.99)},
			{Name: "Over $500", Min: 500},
		}, nil
	}

	ranges := []PriceRange{}

	if minPrice < 100 {
		count, err := s.repo.CountProductsPriced(ctx, 0, ptr(100.0))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, PriceRange{Name: "Under $100", Min: 0, Max: ptr(99.99), Count: count})
	}

	if minPrice < 300 && maxPrice > 100 {
		count, err := s.repo.CountProductsPriced(ctx, 100, ptr(300.0))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, PriceRange{Name: "$100 - $300", Min: 100, Max: ptr(299.99), Count: count})
	}

	if minPrice < 500 && maxPrice > 300 {
		count, err := s.repo.CountProductsPriced(ctx, 300, ptr(500.0))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, PriceRange{Name: "$300 - $500", Min: 300, Max: ptr(499.99), Count: count})
	}

	if maxPrice > 500 {
		count, err := s.repo.CountProductsPriced(ctx, 500, nil)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, PriceRange{Name: "Over $500", Min: 500, Count: count})
	}

	return ranges, nil
}

func ptr(f float64) *float64 {
	return &f
}
