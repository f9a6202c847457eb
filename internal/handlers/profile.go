// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"codeberg.org/oliverandrich/resonance-shop/internal/auth"
)

type updateAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// UpdateAddress replaces the current user's shipping address.
func (h *Handlers) UpdateAddress(c echo.Context) error {
	var req updateAddressRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Address is required")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Address is required")
	}

	user := auth.GetUser(c.Request().Context())
	if err := h.auth.UpdateAddress(c.Request().Context(), user, req.Address); err != nil {
		return respondError(c, err)
	}

	return successJSON(c, http.StatusOK, map[string]any{
		"message": "Address updated successfully",
		"data": map[string]any{
			"address": user.Address,
		},
	})
}

type updateUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

// UpdateUsername renames the current user.
func (h *Handlers) UpdateUsername(c echo.Context) error {
	var req updateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Username is required")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Username is required")
	}

	user := auth.GetUser(c.Request().Context())
	if err := h.auth.UpdateUsername(c.Request().Context(), user, req.Username); err != nil {
		return respondError(c, err)
	}

	return successJSON(c, http.StatusOK, map[string]any{
		"message": "Username updated successfully",
		"data": map[string]any{
			"username": user.Username,
		},
	})
}
