// Package session holds the authenticated identity and bearer credential
// for a browser. State lives in signed cookies so it survives reloads; the
// server keeps nothing.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/mystore/storefront/internal/domain"
)

// Cookie names. These are the durable client storage keys: the opaque
// bearer token and the JSON-encoded user snapshot.
const (
	tokenCookie = "token"
	userCookie  = "user"
)

// valueKey is the single slot used inside each cookie's value map.
const valueKey = "v"

const maxAge = 30 * 86400 // 30 days

// userPayload is the persisted shape of the user snapshot.
type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Store reads and writes the session cookies. It is safe for concurrent use.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a Store signing its cookies with secret.
func NewStore(secret []byte, secure bool) *Store {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}
}

// Login persists the token and user snapshot together. Subsequent requests
// carrying the response cookies see the pair atomically.
func (s *Store) Login(w http.ResponseWriter, r *http.Request, creds domain.Credentials) error {
	tok, _ := s.cookies.Get(r, tokenCookie)
	tok.Values[valueKey] = creds.Token
	if err := tok.Save(r, w); err != nil {
		return fmt.Errorf("save token cookie: %w", err)
	}

	encoded, err := json.Marshal(userPayload{
		ID:    creds.User.ID,
		Name:  creds.User.Name,
		Email: creds.User.Email,
	})
	if err != nil {
		return fmt.Errorf("encode user payload: %w", err)
	}

	usr, _ := s.cookies.Get(r, userCookie)
	usr.Values[valueKey] = string(encoded)
	if err := usr.Save(r, w); err != nil {
		return fmt.Errorf("save user cookie: %w", err)
	}
	return nil
}

// Logout clears the token and user together.
func (s *Store) Logout(w http.ResponseWriter, r *http.Request) error {
	for _, name := range []string{tokenCookie, userCookie} {
		sess, _ := s.cookies.Get(r, name)
		sess.Options.MaxAge = -1
		sess.Values = map[any]any{}
		if err := sess.Save(r, w); err != nil {
			return fmt.Errorf("expire %s cookie: %w", name, err)
		}
	}
	return nil
}

// Current returns the session carried by the request, or nil when no token
// is present. A missing, malformed, or sentinel user payload is discarded
// silently: the returned session then has a token but no user and is not
// Valid for protected flows. Decode failures never propagate.
func (s *Store) Current(r *http.Request) *domain.Session {
	tok, _ := s.cookies.Get(r, tokenCookie)
	token, _ := tok.Values[valueKey].(string)
	if token == "" {
		return nil
	}

	return &domain.Session{Token: token, User: s.currentUser(r)}
}

func (s *Store) currentUser(r *http.Request) *domain.User {
	sess, _ := s.cookies.Get(r, userCookie)
	raw, _ := sess.Values[valueKey].(string)

	// The SPA this replaced sometimes persisted the literal strings
	// "undefined" or "null"; treat them like an absent user.
	if raw == "" || raw == "undefined" || raw == "null" {
		return nil
	}

	var payload userPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		slog.Debug("discarding malformed user cookie", "error", err)
		return nil
	}
	return &domain.User{ID: payload.ID, Name: payload.Name, Email: payload.Email}
}
