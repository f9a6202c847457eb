// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	"codeberg.org/oliverandrich/resonance-shop/internal/testutil"
)

func TestListProducts(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestProduct(t, repo, "Studio Monitor", "speakers", "Yamaha", 299.99)
	testutil.NewTestProduct(t, repo, "Condenser Mic", "microphones", "Rode", 199.00)

	products, err := repo.ListProducts(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestListProductsByCategory(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestProduct(t, repo, "Studio Monitor", "speakers", "Yamaha", 299.99)
	testutil.NewTestProduct(t, repo, "Condenser Mic", "microphones", "Rode", 199.00)

	products, err := repo.ListProductsByCategory(ctx, "speakers")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Studio Monitor", products[0].Name)
}

func TestGetProductByID_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := repo.GetProductByID(ctx, 42)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBrandCounts(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestProduct(t, repo, "Monitor A", "speakers", "Yamaha", 299.99)
	testutil.NewTestProduct(t, repo, "Monitor B", "speakers", "Yamaha", 349.99)
	testutil.NewTestProduct(t, repo, "Mic", "microphones", "Rode", 199.00)

	brands, err := repo.BrandCounts(ctx)

	require.NoError(t, err)
	require.Len(t, brands, 2)
	// Ordered by brand name.
	assert.Equal(t, "Rode", brands[0].Brand)
	assert.Equal(t, 1, brands[0].Count)
	assert.Equal(t, "Yamaha", brands[1].Brand)
	assert.Equal(t, 2, brands[1].Count)
}

func TestPriceBounds_EmptyCatalog(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	_, _, ok, err := repo.PriceBounds(ctx)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPriceBounds(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestProduct(t, repo, "Cheap", "cables", "Hosa", 9.99)
	testutil.NewTestProduct(t, repo, "Pricey", "speakers", "Genelec", 1499.00)

	minPrice, maxPrice, ok, err := repo.PriceBounds(ctx)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 9.99, minPrice, 0.001)
	assert.InDelta(t, 1499.00, maxPrice, 0.001)
}

func TestCountProductsPriced(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestProduct(t, repo, "Cheap", "cables", "Hosa", 9.99)
	testutil.NewTestProduct(t, repo, "Mid", "microphones", "Rode", 199.00)
	testutil.NewTestProduct(t, repo, "Pricey", "speakers", "Genelec", 1499.00)

	max := 100.0
	count, err := repo.CountProductsPriced(ctx, 0, &max)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountProductsPriced(ctx, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
