// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import (
	"strings"
	"time"
)

// User is a storefront account. The password is stored only as a bcrypt
// hash and never serialized; the reset fields are both nil unless a
// password reset is pending.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	PhoneNumber  string `db:"phone_number" json:"phone_number"`
	Address      string `db:"address" json:"address"`
	City         string `db:"city" json:"city"`
	State        string `db:"state" json:"state"`
	PostalCode   string `db:"postal_code" json:"postal_code"`
	Country      string `db:"country" json:"country"`
	IsStaff      bool   `db:"is_staff" json:"is_admin"`
	IsSuperuser  bool   `db:"is_superuser" json:"is_superuser"`

	ResetToken        *string    `db:"reset_token" json:"-"`
	ResetTokenExpires *time.Time `db:"reset_token_expires_at" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// UserType returns the role label exposed by the API.
func (u *User) UserType() string {
	if u.IsStaff {
		return "admin"
	}
	return "customer"
}

// FullAddress returns the free-text address, or composes one from the
// derived fields when no free-text address has been stored.
func (u *User) FullAddress() string {
	if u.Address != "" {
		return u.Address
	}

	var parts []string
	for _, p := range []string{u.City, u.State, u.PostalCode, u.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// DisplayName returns the first name, falling back to the username.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// Attributes returns the personal data used for password similarity checks.
func (u *User) Attributes() []string {
	return []string{u.Username, u.Email, u.FirstName, u.LastName}
}
