// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package server wires configuration, storage, services and routes into
// a running HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"

	"codeberg.org/oliverandrich/resonance-shop/internal/config"
	"codeberg.org/oliverandrich/resonance-shop/internal/database"
	"codeberg.org/oliverandrich/resonance-shop/internal/handlers"
	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	authsvc "codeberg.org/oliverandrich/resonance-shop/internal/services/auth"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/catalog"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/email"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/reset"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/token"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
	)

	// Database (migrations run on open)
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	// Repository and services
	repo := repository.New(db)
	tokens := token.NewIssuer(repo)
	auth := authsvc.NewService(repo, tokens)
	catalogSvc := catalog.NewService(repo)

	var sender reset.Sender
	if cfg.SMTP.Host != "" {
		mailer, mailErr := email.NewService(&cfg.SMTP)
		if mailErr != nil {
			return fmt.Errorf("failed to set up mailer: %w", mailErr)
		}
		sender = mailer
	} else {
		slog.Warn("SMTP not configured, password reset mails will be logged only")
		sender = logSender{}
	}
	resetSvc := reset.NewService(repo, sender, cfg.Frontend.BaseURL)

	// Optional superuser bootstrap
	if cfg.Admin.Username != "" && cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if bootErr := auth.EnsureSuperuser(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); bootErr != nil {
			return fmt.Errorf("failed to bootstrap superuser: %w", bootErr)
		}
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewRequestValidator()

	setupMiddleware(e, cfg, tokens)
	handlers.RegisterRoutes(e, handlers.New(repo, auth, tokens, resetSvc, catalogSvc))

	return startWithGracefulShutdown(e, cfg)
}

func startWithGracefulShutdown(e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("Server running", "url", cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

// logSender stands in for the SMTP mailer when no SMTP host is
// configured. Useful in development.
type logSender struct{}

func (logSender) SendPasswordReset(_ context.Context, to, _, resetURL string) error {
	slog.Info("password_reset_mail", "to", to, "reset_url", resetURL)
	return nil
}
