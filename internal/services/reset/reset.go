// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package reset implements the two-phase password-reset flow: a
// time-limited single-use token is issued and mailed out, then consumed
// by setting a new password.
package reset

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/password"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenLength is the number of random bytes per reset token.
	TokenLength = 32
	// TokenExpiry is how long reset tokens are valid.
	TokenExpiry = 24 * time.Hour
)

// RequestMessage is the reply for every reset request, whether or not
// the email belongs to an account.
const RequestMessage = "If your email is registered, you will receive reset instructions shortly."

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenExpired = errors.New("reset token has expired")
)

// Sender delivers the password-reset mail. Implemented by the email
// service; a delivery failure must fail the whole request.
type Sender interface {
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error
}

// Service handles reset token issuance and consumption.
type Service struct {
	repo        *repository.Repository
	validator   *password.Validator
	sender      Sender
	frontendURL string
}

// NewService creates a new Service instance. frontendURL is the base of
// the reset link embedded in the mail.
func NewService(repo *repository.Repository, sender Sender, frontendURL string) *Service {
	return &Service{
		repo:        repo,
		validator:   password.DefaultValidator(),
		sender:      sender,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
	}
}

// Request starts a password reset for the account holding the given
// email. Unknown emails succeed silently so the endpoint cannot be used
// to enumerate accounts.
func (s *Service) Request(ctx context.Context, email string) error {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	resetToken, err := generateToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(TokenExpiry)
	if err := s.repo.SetUserResetToken(ctx, user.ID, resetToken, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset_password?token=%s", s.frontendURL, resetToken)
	if err := s.sender.SendPasswordReset(ctx, user.Email, user.DisplayName(), resetURL); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("password_reset_requested", "user_id", user.ID)
	return nil
}

// Confirm consumes a reset token and sets the new password.
//
// The token is looked up before its expiry is checked; do not reorder
// these steps, the distinction between ErrInvalidToken and
// ErrTokenExpired is part of the observable contract. A failed password
// validation leaves the pending reset intact.
func (s *Service) Confirm(ctx context.Context, resetToken, newPassword string) error {
	user, err := s.repo.GetUserByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ResetTokenExpires == nil || user.ResetTokenExpires.Before(time.Now()) {
		return ErrTokenExpired
	}

	if failure := s.validator.Validate(newPassword, user.Attributes()...).Failure(); failure != nil {
		return failure
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.ResetUserPassword(ctx, user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	slog.Info("password_reset_completed", "user_id", user.ID)
	return nil
}

// generateToken returns a high-entropy hex reset token.
func generateToken() (string, error) {
	bytes := make([]byte, TokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
