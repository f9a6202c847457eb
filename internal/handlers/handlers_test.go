// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"codeberg.org/oliverandrich/resonance-shop/internal/handlers"
	mw "codeberg.org/oliverandrich/resonance-shop/internal/middleware"
	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	authsvc "codeberg.org/oliverandrich/resonance-shop/internal/services/auth"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/catalog"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/reset"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/token"
	"codeberg.org/oliverandrich/resonance-shop/internal/testutil"
)

// nopSender drops reset mails in handler tests.
type nopSender struct{}

func (nopSender) SendPasswordReset(context.Context, string, string, string) error { return nil }

type app struct {
	e    *echo.Echo
	repo *repository.Repository
}

func newApp(t *testing.T) *app {
	t.Helper()
	_, repo := testutil.NewTestDB(t)

	tokens := token.NewIssuer(repo)
	auth := authsvc.NewService(repo, tokens)
	resetSvc := reset.NewService(repo, nopSender{}, "https://shop.example.com")
	catalogSvc := catalog.NewService(repo)
	h := handlers.New(repo, auth, tokens, resetSvc, catalogSvc)

	e := echo.New()
	e.Validator = handlers.NewRequestValidator()
	e.Use(mw.LoadUser(tokens))
	handlers.RegisterRoutes(e, h)

	return &app{e: e, repo: repo}
}

func (a *app) request(method, path, body, authToken string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authToken != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+authToken)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// register creates an account through the API and returns its token.
func (a *app) register(t *testing.T, username, email string) string {
	t.Helper()
	rec := a.request(http.MethodPost, "/api/register",
		`{"username":"`+username+`","password":"Tr0ub4dor&3xyz","email":"`+email+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}
