// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
)

func TestApplyAddress_FullAddress(t *testing.T) {
	user := &models.User{}

	applyAddress(user, "Jamie Doe\nUnit 4\n12 Main St\nPortland, OR 97201\nUSA")

	assert.Equal(t, "Jamie Doe\nUnit 4\n12 Main St\nPortland, OR 97201\nUSA", user.Address)
	assert.Equal(t, "Portland", user.City)
	assert.Equal(t, "OR", user.State)
	assert.Equal(t, "97201", user.PostalCode)
	assert.Equal(t, "USA", user.Country)
}

func TestApplyAddress_ShortAddressKeepsStructuredFields(t *testing.T) {
	user := &models.User{
		City:    "Berlin",
		State:   "BE",
		Country: "Germany",
	}

	applyAddress(user, "12 Main St")

	assert.Equal(t, "12 Main St", user.Address)
	assert.Equal(t, "Berlin", user.City)
	assert.Equal(t, "BE", user.State)
	assert.Equal(t, "Germany", user.Country)
}

func TestApplyAddress_FourLines(t *testing.T) {
	user := &models.User{Country: "USA"}

	applyAddress(user, "Jamie Doe\nUnit 4\n12 Main St\nPortland, OR 97201")

	assert.Equal(t, "Portland", user.City)
	assert.Equal(t, "OR", user.State)
	assert.Equal(t, "97201", user.PostalCode)
	// No fifth line, country untouched.
	assert.Equal(t, "USA", user.Country)
}

func TestApplyAddress_CityOnlyLine(t *testing.T) {
	user := &models.User{State: "OR", PostalCode: "97201"}

	applyAddress(user, "Jamie Doe\nUnit 4\n12 Main St\nPortland")

	assert.Equal(t, "Portland", user.City)
	// No comma segment, state and zip keep their previous values.
	assert.Equal(t, "OR", user.State)
	assert.Equal(t, "97201", user.PostalCode)
}

func TestApplyAddress_StateWithoutZip(t *testing.T) {
	user := &models.User{}

	applyAddress(user, "Jamie Doe\nUnit 4\n12 Main St\nPortland, OR")

	assert.Equal(t, "Portland", user.City)
	assert.Equal(t, "OR", user.State)
	assert.Empty(t, user.PostalCode)
}

func TestApplyAddress_MultiWordZipKeptWhole(t *testing.T) {
	user := &models.User{}

	applyAddress(user, "Jamie Doe\nUnit 4\n12 Main St\nLondon, GREATER SW1A 1AA\nUK")

	assert.Equal(t, "London", user.City)
	assert.Equal(t, "GREATER", user.State)
	// Everything after the first space stays in the postal code.
	assert.Equal(t, "SW1A 1AA", user.PostalCode)
	assert.Equal(t, "UK", user.Country)
}
