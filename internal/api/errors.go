package api

import (
	"fmt"
	"net/http"

	"github.com/mystore/storefront/internal/domain"
)

// RemoteError is a non-2xx response from the store API. Message holds the
// server-provided message verbatim; it may be empty.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("store api: status %d: %s", e.StatusCode, e.Message)
}

// Is maps well-known statuses onto the domain sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// UserMessage returns the text to surface to the customer: the server's
// message when present, else the given fallback.
func (e *RemoteError) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}
