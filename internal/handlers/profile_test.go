// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAddressEndpoint(t *testing.T) {
	a := newApp(t)
	tok := a.register(t, "jamie", "jamie@example.com")

	rec := a.request(http.MethodPut, "/api/user/address",
		`{"address":"Jamie Doe\nUnit 4\n12 Main St\nPortland, OR 97201\nUSA"}`, tok)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "Address updated successfully", body["message"])

	user, err := a.repo.GetUserByUsername(t.Context(), "jamie")
	require.NoError(t, err)
	assert.Equal(t, "Portland", user.City)
	assert.Equal(t, "OR", user.State)
	assert.Equal(t, "97201", user.PostalCode)
	assert.Equal(t, "USA", user.Country)
}

func TestUpdateAddressEndpoint_MissingField(t *testing.T) {
	a := newApp(t)
	tok := a.register(t, "jamie", "jamie@example.com")

	rec := a.request(http.MethodPut, "/api/user/address", `{}`, tok)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Address is required", decode(t, rec)["message"])
}

func TestUpdateAddressEndpoint_RequiresAuth(t *testing.T) {
	a := newApp(t)

	rec := a.request(http.MethodPut, "/api/user/address", `{"address":"12 Main St"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateUsernameEndpoint(t *testing.T) {
	a := newApp(t)
	tok := a.register(t, "jamie", "jamie@example.com")

	rec := a.request(http.MethodPut, "/api/user/username", `{"username":"jamie2"}`, tok)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "Username updated successfully", body["message"])
	assert.Equal(t, "jamie2", body["data"].(map[string]any)["username"])
}

func TestUpdateUsernameEndpoint_Taken(t *testing.T) {
	a := newApp(t)
	tok := a.register(t, "jamie", "jamie@example.com")
	a.register(t, "taken", "taken@example.com")

	rec := a.request(http.MethodPut, "/api/user/username", `{"username":"taken"}`, tok)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", decode(t, rec)["message"])
}
