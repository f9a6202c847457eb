// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
)

// CreateToken inserts a new session token.
func (r *Repository) CreateToken(ctx context.Context, token *models.Token) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_tokens (user_id, key) VALUES (?, ?)`,
		token.UserID, token.Key)
	if err != nil {
		return wrapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	return wrapError(r.db.GetContext(ctx, token, `SELECT * FROM auth_tokens WHERE id = ?`, id))
}

// GetTokenByKey retrieves a session token by its opaque key.
func (r *Repository) GetTokenByKey(ctx context.Context, key string) (*models.Token, error) {
	var token models.Token
	if err := r.db.GetContext(ctx, &token, `SELECT * FROM auth_tokens WHERE key = ?`, key); err != nil {
		return nil, wrapError(err)
	}
	return &token, nil
}

// GetTokenByUserID retrieves the oldest token owned by the account.
func (r *Repository) GetTokenByUserID(ctx context.Context, userID int64) (*models.Token, error) {
	var token models.Token
	err := r.db.GetContext(ctx, &token,
		`SELECT * FROM auth_tokens WHERE user_id = ? ORDER BY id LIMIT 1`, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &token, nil
}

// DeleteTokensByUserID deletes every token owned by the account.
// Deleting zero rows is not an error.
func (r *Repository) DeleteTokensByUserID(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE user_id = ?`, userID)
	return wrapError(err)
}
