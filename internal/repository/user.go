// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
)

// CreateUser inserts a new account and reloads it with the generated
// columns. A username or email collision surfaces as ErrDuplicate.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, first_name, last_name, phone_number, is_staff, is_superuser)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.PhoneNumber,
		user.IsStaff, user.IsSuperuser)
	if err != nil {
		return wrapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	return wrapError(r.db.GetContext(ctx, user, `SELECT * FROM users WHERE id = ?`, id))
}

// GetUserByID retrieves an account by ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByUsername retrieves an account by its exact username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = ?`, username); err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByEmail retrieves an account by email, comparing case-insensitively.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE LOWER(email) = LOWER(?)`, email); err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByResetToken retrieves the account holding the given pending
// reset token.
func (r *Repository) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE reset_token = ?`, token); err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// UpdateUser persists the mutable account fields.
func (r *Repository) UpdateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET username = ?, email = ?, first_name = ?, last_name = ?, phone_number = ?,
		     address = ?, city = ?, state = ?, postal_code = ?, country = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		user.Username, user.Email, user.FirstName, user.LastName, user.PhoneNumber,
		user.Address, user.City, user.State, user.PostalCode, user.Country,
		user.ID)
	return wrapError(err)
}

// SetUserRole sets the staff and superuser flags.
func (r *Repository) SetUserRole(ctx context.Context, id int64, isStaff, isSuperuser bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_staff = ?, is_superuser = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		isStaff, isSuperuser, id)
	return wrapError(err)
}

// SetUserResetToken stores a pending password-reset token and its expiry.
func (r *Repository) SetUserResetToken(ctx context.Context, id int64, token string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = ?, reset_token_expires_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		token, expiresAt, id)
	return wrapError(err)
}

// ResetUserPassword sets a new password hash and clears the pending
// reset token in one statement, so a consumed token can never linger.
func (r *Repository) ResetUserPassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET password_hash = ?, reset_token = NULL, reset_token_expires_at = NULL,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		passwordHash, id)
	return wrapError(err)
}

// UsernameTakenByOther reports whether another account already holds the
// given username.
func (r *Repository) UsernameTakenByOther(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users WHERE username = ? AND id != ?`, username, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
