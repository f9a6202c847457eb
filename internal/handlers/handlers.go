// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package handlers implements the HTTP API surface.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	authsvc "codeberg.org/oliverandrich/resonance-shop/internal/services/auth"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/catalog"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/reset"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/token"
)

// Handlers bundles the services backing the HTTP endpoints.
type Handlers struct {
	repo    *repository.Repository
	auth    *authsvc.Service
	tokens  *token.Issuer
	reset   *reset.Service
	catalog *catalog.Service
}

// New creates a new Handlers instance.
func New(repo *repository.Repository, auth *authsvc.Service, tokens *token.Issuer, resetSvc *reset.Service, catalogSvc *catalog.Service) *Handlers {
	return &Handlers{
		repo:    repo,
		auth:    auth,
		tokens:  tokens,
		reset:   resetSvc,
		catalog: catalogSvc,
	}
}

// Health reports service liveness.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
