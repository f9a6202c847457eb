// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"github.com/labstack/echo/v4"

	mw "codeberg.org/oliverandrich/resonance-shop/internal/middleware"
)

// RegisterRoutes attaches the full API surface to the echo instance.
// The server and the handler tests share this table so they cannot
// drift apart.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout, mw.RequireAuth)
	api.GET("/user", h.CurrentUser, mw.RequireAuth)
	api.POST("/validate-password", h.ValidatePassword)
	api.PUT("/user/address", h.UpdateAddress, mw.RequireAuth)
	api.PUT("/user/username", h.UpdateUsername, mw.RequireAuth)
	api.POST("/forgot-password", h.ForgotPassword)
	api.POST("/reset-password", h.ResetPassword)

	api.GET("/products", h.ListProducts)
	api.GET("/products/filters", h.ProductFilters)
	api.GET("/products/:category", h.ListProductsByCategory)
	api.GET("/products/:category/:id", h.ProductDetail)
	api.GET("/product/:id", h.ProductDetail)
}
