// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/oliverandrich/resonance-shop/internal/config"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/email"
)

func TestNewService(t *testing.T) {
	svc, err := email.NewService(&config.SMTPConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "noreply@example.com",
	})

	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestNewService_MissingHost(t *testing.T) {
	_, err := email.NewService(&config.SMTPConfig{From: "noreply@example.com"})

	assert.ErrorContains(t, err, "SMTP host is required")
}

func TestNewService_MissingFrom(t *testing.T) {
	_, err := email.NewService(&config.SMTPConfig{Host: "smtp.example.com"})

	assert.ErrorContains(t, err, "SMTP from address is required")
}
