// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	"codeberg.org/oliverandrich/resonance-shop/internal/testutil"
)

func TestCreateToken(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "testuser", "test@example.com")

	token := &models.Token{UserID: user.ID, Key: "key-1"}
	err := repo.CreateToken(ctx, token)

	require.NoError(t, err)
	assert.NotZero(t, token.ID)
	assert.NotZero(t, token.CreatedAt)
}

func TestCreateToken_DuplicateKey(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "testuser", "test@example.com")
	require.NoError(t, repo.CreateToken(ctx, &models.Token{UserID: user.ID, Key: "key-1"}))

	err := repo.CreateToken(ctx, &models.Token{UserID: user.ID, Key: "key-1"})

	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestGetTokenByKey(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "testuser", "test@example.com")
	require.NoError(t, repo.CreateToken(ctx, &models.Token{UserID: user.ID, Key: "key-1"}))

	token, err := repo.GetTokenByKey(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)

	_, err = repo.GetTokenByKey(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetTokenByUserID(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "testuser", "test@example.com")

	_, err := repo.GetTokenByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.CreateToken(ctx, &models.Token{UserID: user.ID, Key: "key-1"}))

	token, err := repo.GetTokenByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "key-1", token.Key)
}

func TestDeleteTokensByUserID(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "testuser", "test@example.com")
	require.NoError(t, repo.CreateToken(ctx, &models.Token{UserID: user.ID, Key: "key-1"}))
	require.NoError(t, repo.CreateToken(ctx, &models.Token{UserID: user.ID, Key: "key-2"}))

	require.NoError(t, repo.DeleteTokensByUserID(ctx, user.ID))

	_, err := repo.GetTokenByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, repo.DeleteTokensByUserID(ctx, user.ID))
}
