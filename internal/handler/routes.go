package handler

import (
	"net/http"

	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/service"
	"github.com/mystore/storefront/internal/session"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Public routes
// resolve the session when one exists; the checkout and orders routes
// require one and redirect to the login page otherwise.
func RegisterRoutes(
	mux *http.ServeMux,
	sessions *session.Store,
	carts *cart.Store,
	accounts *service.AccountService,
	catalog *service.CatalogService,
	orders *service.OrderService,
	limiter *service.TokenBucket,
) {
	catalogHandler := NewCatalogHandler(catalog, carts)
	authHandler := NewAuthHandler(accounts, sessions, carts, limiter)
	cartHandler := NewCartHandler(carts, catalog, orders)
	ordersHandler := NewOrdersHandler(orders, carts)

	public := func(h http.HandlerFunc) http.Handler {
		return WithSession(sessions, h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return RequireSession(sessions, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("GET /", public(catalogHandler.HandleHome))
	mux.Handle("GET /search", public(catalogHandler.HandleSearch))

	mux.Handle("GET /login", public(authHandler.HandleLoginPage))
	mux.Handle("POST /login", public(authHandler.HandleLogin))
	mux.Handle("GET /register", public(authHandler.HandleRegisterPage))
	mux.Handle("POST /register", public(authHandler.HandleRegister))
	mux.Handle("POST /logout", public(authHandler.HandleLogout))

	mux.Handle("GET /cart", public(cartHandler.HandleCartPage))
	mux.Handle("POST /cart/items", public(cartHandler.HandleAddItem))
	mux.Handle("DELETE /cart/items/{id}", public(cartHandler.HandleRemoveItem))
	mux.Handle("POST /cart/clear", public(cartHandler.HandleClearCart))

	mux.Handle("POST /checkout", protected(cartHandler.HandleCheckout))
	mux.Handle("GET /orders", protected(ordersHandler.HandleOrdersPage))
	mux.Handle("GET /orders/list", protected(ordersHandler.HandleOrdersList))
}
