// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListProducts returns all products as a bare array.
func (h *Handlers) ListProducts(c echo.Context) error {
	products, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// ListProductsByCategory returns the products in the category named in
// the path.
func (h *Handlers) ListProductsByCategory(c echo.Context) error {
	products, err := h.catalog.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// ProductDetail returns a single product by id.
func (h *Handlers) ProductDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid product id")
	}

	product, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// ProductFilters returns the aggregated filter options for the catalog.
func (h *Handlers) ProductFilters(c echo.Context) error {
	filters, err := h.catalog.Filters(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, filters)
}
