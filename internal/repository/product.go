// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"database/sql"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
)

// CreateProduct inserts a new catalog item.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, description, brand, category, connections, price, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		product.Name, product.Description, product.Brand, product.Category,
		product.Connections, product.Price, product.ImageURL)
	if err != nil {
		return wrapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	return wrapError(r.db.GetContext(ctx, product, `SELECT * FROM products WHERE id = ?`, id))
}

// ListProducts returns all catalog items ordered by id.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY id`); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsByCategory returns the catalog items in the given category.
func (r *Repository) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE category = ? ORDER BY id`, category)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID retrieves a catalog item by ID.
func (r *Repository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.GetContext(ctx, &product, `SELECT * FROM products WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &product, nil
}

// BrandCounts returns each distinct brand with its product count.
func (r *Repository) BrandCounts(ctx context.Context) ([]models.BrandCount, error) {
	counts := []models.BrandCount{}
	err := r.db.SelectContext(ctx, &counts,
		`SELECT brand, COUNT(*) AS count FROM products GROUP BY brand ORDER BY brand`)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// ConnectionCounts returns each distinct connection type with its
// product count.
func (r *Repository) ConnectionCounts(ctx context.Context) ([]models.ConnectionCount, error) {
	counts := []models.ConnectionCount{}
	err := r.db.SelectContext(ctx, &counts,
		`SELECT connections, COUNT(*) AS count FROM products GROUP BY connections ORDER BY connections`)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// PriceBounds returns the lowest and highest product price. ok is false
// when the catalog is empty.
func (r *Repository) PriceBounds(ctx context.Context) (minPrice, maxPrice float64, ok bool, err error) {
	var bounds struct {
		Min sql.NullFloat64 `db:"min_price"`
		Max sql.NullFloat64 `db:"max_price"`
	}
	err = r.db.GetContext(ctx, &bounds,
		`SELECT MIN(price) AS min_price, MAX(price) AS max_price FROM products`)
	if err != nil {
		return 0, 0, false, err
	}
	if !bounds.Min.Valid || !bounds.Max.Valid {
		return 0, 0, false, nil
	}
	return bounds.Min.Float64, bounds.Max.Float64, true, nil
}

// CountProductsPriced counts products with price >= min and, when max is
// non-nil, price < max.
func (r *Repository) CountProductsPriced(ctx context.Context, minInclusive float64, maxExclusive *float64) (int, error) {
	var count int
	if maxExclusive == nil {
		err := r.db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM products WHERE price >= ?`, minInclusive)
		return count, err
	}
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM products WHERE price >= ? AND price < ?`, minInclusive, *maxExclusive)
	return count, err
}
