// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth implements registration, login and profile mutation for
// storefront accounts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/oliverandrich/resonance-shop/internal/models"
	"codeberg.org/oliverandrich/resonance-shop/internal/repository"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/password"
	"codeberg.org/oliverandrich/resonance-shop/internal/services/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrNotAuthorized      = errors.New("unauthorized to create admin users")
	ErrInvalidUserType    = errors.New("invalid user type")
)

// dummyHash is used for constant-time login to prevent timing attacks
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)

// Service handles account registration, authentication and profile
// updates.
type Service struct {
	repo      *repository.Repository
	tokens    *token.Issuer
	validator *password.Validator
}

// NewService creates a new Service instance.
func NewService(repo *repository.Repository, tokens *token.Issuer) *Service {
	return &Service{
		repo:      repo,
		tokens:    tokens,
		validator: password.DefaultValidator(),
	}
}

// Session is an authenticated account together with its bearer token.
type Session struct {
	User  *models.User
	Token *models.Token
}

// RegisterParams holds the parameters for account registration. Caller
// is the authenticated account making the request, nil for anonymous
// registration.
type RegisterParams struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	UserType  string
	Caller    *models.User
}

// Register creates a new account and issues its session token.
//
// Admin accounts can only be created by an authenticated superuser.
// Username and email conflicts are reported in that order; password
// failures are aggregated across the registration checks and the
// generic validator. No state is persisted on any failure path.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	userType := strings.ToLower(params.UserType)
	if userType == "" {
		userType = "customer"
	}
	if userType != "admin" && userType != "customer" {
		return nil, ErrInvalidUserType
	}
	if userType == "admin" && (params.Caller == nil || !params.Caller.IsSuperuser) {
		return nil, ErrNotAuthorized
	}

	if _, err := s.repo.GetUserByUsername(ctx, params.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.repo.GetUserByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	attrs := []string{params.Username, params.Email, params.FirstName, params.LastName}
	if failure := s.ValidatePassword(params.Password, attrs...); failure != nil {
		return nil, failure
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(passwordHash),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		IsStaff:      userType == "admin",
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// A racing registration won the unique index; report the
			// conflict in the documented order.
			if _, lookupErr := s.repo.GetUserByUsername(ctx, params.Username); lookupErr == nil {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	sessionToken, err := s.tokens.IssueOrGet(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("register_success", "user_id", user.ID, "username", user.Username, "user_type", userType)

	return &Session{User: user, Token: sessionToken}, nil
}

// Login authenticates an account by username or email. The identifier
// is tried as a username first and, only when no account matches and it
// contains "@", retried as an email. Both unknown accounts and wrong
// passwords surface as the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, identifier, plaintext string) (*Session, error) {
	user, err := s.repo.GetUserByUsername(ctx, identifier)
	if errors.Is(err, repository.ErrNotFound) && strings.Contains(identifier, "@") {
		user, err = s.repo.GetUserByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Constant-time: always perform bcrypt comparison to prevent timing attacks
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plaintext))
			slog.Warn("login_failed", "identifier", identifier, "reason", "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(plaintext)); err != nil {
		slog.Warn("login_failed", "identifier", identifier, "reason", "invalid_password")
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := s.tokens.IssueOrGet(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("login_success", "user_id", user.ID, "username", user.Username)

	return &Session{User: user, Token: sessionToken}, nil
}

// ValidatePassword runs the storefront's registration checks (at least
// one uppercase ASCII letter, at least one digit) followed by the
// generic strength validator, and returns every failure together.
func (s *Service) ValidatePassword(plaintext string, userAttributes ...string) *password.ValidationFailure {
	var errs []password.ValidationError

	if !strings.ContainsFunc(plaintext, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, password.ValidationError{
			Code:    "no_uppercase",
			Message: "Password must contain at least one uppercase letter.",
		})
	}
	if !strings.ContainsFunc(plaintext, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs = append(errs, password.ValidationError{
			Code:    "no_digit",
			Message: "Password must contain at least one number.",
		})
	}

	result := s.validator.Validate(plaintext, userAttributes...)
	errs = append(errs, result.Errors...)

	if len(errs) == 0 {
		return nil
	}
	return &password.ValidationFailure{Errors: errs}
}

// UpdateUsername changes the account's username after checking that no
// other account holds it.
func (s *Service) UpdateUsername(ctx context.Context, user *models.User, username string) error {
	taken, err := s.repo.UsernameTakenByOther(ctx, username, user.ID)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}

	user.Username = username
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateAddress stores the free-text address and derives the structured
// location fields from it, best effort.
func (s *Service) UpdateAddress(ctx context.Context, user *models.User, address string) error {
	applyAddress(user, address)
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// EnsureSuperuser makes sure an account with superuser privileges
// exists, creating or escalating the named account. Used at startup so
// a fresh deployment has a caller able to create admin accounts.
func (s *Service) EnsureSuperuser(ctx context.Context, username, email, plaintext string) error {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		if user.IsStaff && user.IsSuperuser {
			return nil
		}
		return s.repo.SetUserRole(ctx, user.ID, true, true)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to get user: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user = &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		IsStaff:      true,
		IsSuperuser:  true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	slog.Info("superuser_created", "user_id", user.ID, "username", username)
	return nil
}
