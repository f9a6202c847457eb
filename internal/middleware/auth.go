// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"codeberg.org/oliverandrich/resonance-shop/internal/auth"
	"codeberg.org/oliverandrich/resonance-shop/internal/models"
)

// Authenticator resolves an opaque token key to its owning user.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*models.User, error)
}

// LoadUser creates middleware that resolves the Authorization header and
// stores the authenticated user in the request context. Requests without a
// valid token pass through anonymously.
func LoadUser(tokens Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := bearerKey(c.Request().Header.Get(echo.HeaderAuthorization))
			if key != "" {
				if user, err := tokens.Authenticate(c.Request().Context(), key); err == nil {
					ctx := auth.SetUser(c.Request().Context(), user)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}
			return next(c)
		}
	}
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !auth.IsAuthenticated(c.Request().Context()) {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"status":  "error",
				"message": "Authentication required",
			})
		}
		return next(c)
	}
}

// RequireAdmin rejects requests whose user is not staff with 403.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := auth.GetUser(c.Request().Context())
		if user == nil || !user.IsStaff {
			return c.JSON(http.StatusForbidden, map[string]any{
				"status":  "error",
				"message": "Admin access required",
			})
		}
		return next(c)
	}
}

// bearerKey extracts the token key from an Authorization header value.
// Both "Bearer <key>" and "Token <key>" schemes are accepted.
func bearerKey(header string) string {
	scheme, key, found := strings.Cut(header, " ")
	if !found {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "bearer", "token":
		return strings.TrimSpace(key)
	}
	return ""
}
