package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mystore/storefront/internal/api"
	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/view"
)

// render writes a full page response.
func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		slog.Error("render page", "error", err, "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
	}
}

// frame assembles the page chrome data for the current request.
func frame(r *http.Request, carts *cart.Store) view.Frame {
	f := view.Frame{Session: SessionFromContext(r.Context())}
	if carts != nil {
		f.CartCount = carts.Get(r).Count()
	}
	return f
}

// userMessage picks the text to show the customer for a failed remote
// call: the server's message verbatim when one exists, else fallback.
func userMessage(err error, fallback string) string {
	var remote *api.RemoteError
	if errors.As(err, &remote) {
		return remote.UserMessage(fallback)
	}
	return fallback
}
