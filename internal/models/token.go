// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Token is an opaque bearer token proving an authenticated session.
// It is looked up by key, never decoded, and lives until revoked.
type Token struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Key       string    `db:"key" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
