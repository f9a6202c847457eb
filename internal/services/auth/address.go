// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"strings"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
)

// applyAddress stores the free-text address and derives city, state,
// postal code and country from the storefront's fixed line convention:
// line 4 holds "City, STATE ZIP" and line 5 the country. Parsing is
// best effort; fields whose line or segment is absent keep their
// previous value.
func applyAddress(user *models.User, address string) {
	user.Address = address

	lines := strings.Split(address, "\n")

	if len(lines) >= 4 {
		parts := strings.Split(lines[3], ",")
		if len(parts) >= 1 {
			user.City = strings.TrimSpace(parts[0])
		}
		if len(parts) >= 2 {
			stateZip := strings.SplitN(strings.TrimSpace(parts[1]), " ", 2)
			if len(stateZip) >= 1 {
				user.State = stateZip[0]
			}
			if len(stateZip) >= 2 {
				user.PostalCode = stateZip[1]
			}
		}
	}

	if len(lines) >= 5 {
		user.Country = lines[4]
	}
}
