package service

import (
	"context"
	"fmt"

	"github.com/mystore/storefront/internal/domain"
)

// AccountService authenticates against the remote auth endpoints. It does
// no credential checking of its own beyond rejecting empty fields; password
// policy lives server-side.
type AccountService struct {
	auth domain.AuthGateway
}

// NewAccountService creates a new AccountService.
func NewAccountService(auth domain.AuthGateway) *AccountService {
	return &AccountService{auth: auth}
}

// Login exchanges email and password for credentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return creds, nil
}

// Register creates a remote account and returns its first credentials.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.Credentials, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}
	creds, err := s.auth.Signup(ctx, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return creds, nil
}
