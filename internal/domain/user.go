package domain

import "context"

// User is the identity snapshot returned by the remote auth service.
// It is created remotely on signup and held here only as a cached copy
// after login.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Credentials pairs the opaque bearer token with the user snapshot the
// remote auth service returns for a successful login or signup.
type Credentials struct {
	Token string
	User  User
}

// AuthGateway defines the remote authentication operations.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Signup(ctx context.Context, name, email, password string) (*Credentials, error)
}
