package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mystore/storefront/internal/domain"
	"github.com/mystore/storefront/internal/service"
)

type stubAuth struct {
	creds *domain.Credentials
	err   error
	calls int
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	s.calls++
	return s.creds, s.err
}

func (s *stubAuth) Signup(ctx context.Context, name, email, password string) (*domain.Credentials, error) {
	s.calls++
	return s.creds, s.err
}

func TestAccountService_Login_Success(t *testing.T) {
	auth := &stubAuth{creds: &domain.Credentials{Token: "t", User: domain.User{ID: 1, Name: "Ana"}}}
	accounts := service.NewAccountService(auth)

	creds, err := accounts.Login(context.Background(), "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if creds.Token != "t" || creds.User.Name != "Ana" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestAccountService_Login_EmptyFields(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret123"},
		{"empty password", "ana@example.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auth := &stubAuth{}
			accounts := service.NewAccountService(auth)

			_, err := accounts.Login(context.Background(), tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if auth.calls != 0 {
				t.Fatal("remote auth must not be called with empty fields")
			}
		})
	}
}

func TestAccountService_Register_EmptyName(t *testing.T) {
	auth := &stubAuth{}
	accounts := service.NewAccountService(auth)

	_, err := accounts.Register(context.Background(), "", "ana@example.com", "secret123")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if auth.calls != 0 {
		t.Fatal("remote auth must not be called with empty fields")
	}
}

func TestAccountService_Register_PropagatesRemoteError(t *testing.T) {
	auth := &stubAuth{err: domain.ErrUnauthorized}
	accounts := service.NewAccountService(auth)

	_, err := accounts.Register(context.Background(), "Ana", "ana@example.com", "secret123")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected wrapped remote error, got %v", err)
	}
}
