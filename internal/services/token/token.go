// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package token issues and revokes the opaque session tokens backing
// bearer authentication.
package token

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a bearer key does not resolve to a
// session.
var ErrInvalidToken = errors.New("invalid token")

// Issuer manages session tokens in the database.
type Issuer struct {
	repo *repository.Repository
}

// NewIssuer creates a new Issuer instance.
func NewIssuer(repo *repository.Repository) *Issuer {
	return &Issuer{repo: repo}
}

// IssueOrGet returns the account's existing session token, minting and
// persisting a fresh one only when none exists. A login before logout
// therefore reuses the current token.
func (i *Issuer) IssueOrGet(ctx context.Context, userID int64) (*models.Token, error) {
	token, err := i.repo.GetTokenByUserID(ctx, userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	token = &models.Token{
		UserID: userID,
		Key:    generateKey(),
	}
	if err := i.repo.CreateToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return token, nil
}

// RevokeAll deletes every session token owned by the account. Revoking
// an account without tokens is a no-op.
func (i *Issuer) RevokeAll(ctx context.Context, userID int64) error {
	return i.repo.DeleteTokensByUserID(ctx, userID)
}

// Authenticate resolves a bearer key to its account.
func (i *Issuer) Authenticate(ctx context.Context, key string) (*models.User, error) {
	token, err := i.repo.GetTokenByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	user, err := i.repo.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// generateKey returns a 32-character hex key derived from a random UUID.
func generateKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
