// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Product is a catalog item.
type Product struct { //nolint:govet // fieldalignment: readability over optimization
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Brand       string    `db:"brand" json:"brand"`
	Category    string    `db:"category" json:"category"`
	Connections string    `db:"connections" json:"connections"`
	Price       float64   `db:"price" json:"price"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BrandCount is one row of the brand filter aggregation.
type BrandCount struct {
	Brand string `db:"brand" json:"brand"`
	Count int    `db:"count" json:"count"`
}

// ConnectionCount is one row of the connection-type filter aggregation.
type ConnectionCount struct {
	Connections string `db:"connections" json:"connections"`
	Count       int    `db:"count" json:"count"`
}
