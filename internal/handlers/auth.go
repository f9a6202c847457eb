// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"codeberg.org/oliverandrich/resonance-shop/internal/auth"
	authsvc "codeberg.org/oliverandrich/resonance-shop/internal/services/auth"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/reset"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserType  string `json:"user_type"`
}

// Register creates a new user account and returns a session token.
func (h *Handlers) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Username, password and email are required")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Username, password and email are required")
	}

	session, err := h.auth.Register(c.Request().Context(), authsvc.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  req.UserType,
		Caller:    auth.GetUser(c.Request().Context()),
	})
	if err != nil {
		return respondError(c, err)
	}

	user := session.User
	return successJSON(c, http.StatusCreated, map[string]any{
		"data": map[string]any{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"token":        session.Token.Key,
			"phone_number": user.PhoneNumber,
			"address":      user.FullAddress(),
			"user_type":    user.UserType(),
			"is_admin":     user.IsStaff,
		},
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates by username or email and returns the session token.
func (h *Handlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Username/email and password are required")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Username/email and password are required")
	}

	session, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	user := session.User
	return successJSON(c, http.StatusOK, map[string]any{
		"data": map[string]any{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"token":        session.Token.Key,
			"phone_number": user.PhoneNumber,
			"address":      user.FullAddress(),
			"is_admin":     user.IsStaff,
			"is_superuser": user.IsSuperuser,
			"user_type":    user.UserType(),
		},
	})
}

// Logout revokes every session token held by the current user.
func (h *Handlers) Logout(c echo.Context) error {
	user := auth.GetUser(c.Request().Context())
	if err := h.tokens.RevokeAll(c.Request().Context(), user.ID); err != nil {
		return respondError(c, err)
	}
	return successJSON(c, http.StatusOK, nil)
}

// CurrentUser returns the authenticated user's profile.
func (h *Handlers) CurrentUser(c echo.Context) error {
	user := auth.GetUser(c.Request().Context())
	return successJSON(c, http.StatusOK, map[string]any{
		"data": map[string]any{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"first_name":   user.FirstName,
			"last_name":    user.LastName,
			"phone_number": user.PhoneNumber,
			"address":      user.FullAddress(),
			"is_admin":     user.IsStaff,
			"user_type":    user.UserType(),
		},
	})
}

type validatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// ValidatePassword checks a candidate password against the password rules
// without creating an account.
func (h *Handlers) ValidatePassword(c echo.Context) error {
	var req validatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Password is required")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Password is required")
	}

	if failure := h.auth.ValidatePassword(req.Password); failure != nil {
		return errorJSON(c, http.StatusBadRequest, failure.Messages())
	}
	return successJSON(c, http.StatusOK, map[string]any{
		"message": "Password meets requirements",
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ForgotPassword starts the password reset flow. The response is identical
// whether or not the email is registered.
func (h *Handlers) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Email address is required")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Email address is required")
	}

	if err := h.reset.Request(c.Request().Context(), req.Email); err != nil {
		return respondError(c, err)
	}
	return successJSON(c, http.StatusOK, map[string]any{
		"message": reset.RequestMessage,
	})
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetPassword completes the password reset flow.
func (h *Handlers) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Token and new password are required")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Token and new password are required")
	}

	if err := h.reset.Confirm(c.Request().Context(), req.Token, req.Password); err != nil {
		return respondError(c, err)
	}
	return successJSON(c, http.StatusOK, map[string]any{
		"message": "Your password has been reset successfully",
	})
}
