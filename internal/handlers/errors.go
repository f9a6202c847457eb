// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	authsvc "codeberg.org/oliverandrich/resonance-shop/internal/services/auth"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/password"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/reset"
)

// errorJSON writes the error envelope. The message may be a single string
// or a list of messages.
func errorJSON(c echo.Context, code int, message any) error {
	return c.JSON(code, map[string]any{
		"status":  "error",
		"message": message,
	})
}

func successJSON(c echo.Context, code int, body map[string]any) error {
	payload := map[string]any{"status": "success"}
	for k, v := range body {
		payload[k] = v
	}
	return c.JSON(code, payload)
}

// respondError maps service errors to HTTP responses.
func respondError(c echo.Context, err error) error {
	var failure *password.ValidationFailure
	if errors.As(err, &failure) {
		return errorJSON(c, http.StatusBadRequest, failure.Messages())
	}

	switch {
	case errors.Is(err, authsvc.ErrNotAuthorized):
		return errorJSON(c, http.StatusForbidden, "Unauthorized to create admin users")
	case errors.Is(err, authsvc.ErrUsernameTaken):
		return errorJSON(c, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, authsvc.ErrEmailTaken):
		return errorJSON(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, authsvc.ErrInvalidUserType):
		return errorJSON(c, http.StatusBadRequest, "Invalid user type")
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		return errorJSON(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, reset.ErrInvalidToken):
		return errorJSON(c, http.StatusBadRequest, "Invalid or expired token")
	case errors.Is(err, reset.ErrTokenExpired):
		return errorJSON(c, http.StatusBadRequest, "Reset token has expired")
	case errors.Is(err, repository.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, "Not found")
	}

	slog.Error("internal_error", "error", err, "path", c.Request().URL.Path)
	return errorJSON(c, http.StatusInternalServerError, "Internal server error")
}
