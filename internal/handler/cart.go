package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/domain"
	"github.com/mystore/storefront/internal/service"
	"github.com/mystore/storefront/internal/view"
)

// CartHandler serves the cart page, the cart mutations, and checkout.
type CartHandler struct {
	carts   *cart.Store
	catalog *service.CatalogService
	orders  *service.OrderService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *cart.Store, catalog *service.CatalogService, orders *service.OrderService) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog, orders: orders}
}

// HandleCartPage renders the cart page from the cookie alone; no remote
// calls happen until checkout.
func (h *CartHandler) HandleCartPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, view.CartPage(view.CartData{
		Frame: frame(r, h.carts),
		Cart:  h.carts.Get(r),
	}))
}

// HandleAddItem adds one unit of the product named by ?id= to the cart and
// patches the header badge plus a confirmation toast. Adding an already
// carted product bumps its quantity instead of creating a second line.
func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.Find(r.Context(), id)
	if err != nil {
		slog.Error("add to cart", "error", err, "product_id", id)
		sse := datastar.NewSSE(w, r)
		if errors.Is(err, domain.ErrNotFound) {
			sse.PatchElementTempl(view.Toast("That product is no longer available.", true))
		} else {
			sse.PatchElementTempl(view.Toast("Could not add to cart. Please try again.", true))
		}
		return
	}

	// The cookie write must land before the SSE stream opens.
	updated, err := h.carts.Add(w, r, *product)
	if err != nil {
		slog.Error("persist cart", "error", err)
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.Toast("Could not add to cart. Please try again.", true))
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.CartBadge(updated.Count()))
	sse.PatchElementTempl(view.Toast(product.Name+" added to cart.", false))
}

// HandleRemoveItem deletes the whole line for the product in the path and
// patches the cart contents and badge.
func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	updated, err := h.carts.Remove(w, r, id)
	if err != nil {
		slog.Error("persist cart", "error", err)
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.CartContents(h.carts.Get(r), "Could not update your cart. Please try again."))
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.CartContents(updated, ""))
	sse.PatchElementTempl(view.CartBadge(updated.Count()))
}

// HandleClearCart empties the cart and patches the contents and badge.
func (h *CartHandler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(w, r); err != nil {
		slog.Error("persist cart", "error", err)
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.CartContents(h.carts.Get(r), "Could not update your cart. Please try again."))
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.CartContents(domain.Cart{}, ""))
	sse.PatchElementTempl(view.CartBadge(0))
}

// HandleCheckout submits the cart as one order. Success clears the cart
// and lands on the orders page; failure re-renders the cart page with the
// server's message and the cart intact, so the customer can retry.
func (h *CartHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	current := h.carts.Get(r)
	if current.IsEmpty() {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	sess := SessionFromContext(r.Context())
	order, err := h.orders.Checkout(r.Context(), sess, current)
	if err != nil {
		slog.Error("checkout", "error", err, "request_id", RequestIDFromContext(r.Context()))
		render(w, r, view.CartPage(view.CartData{
			Frame: frame(r, h.carts),
			Cart:  current,
			Err:   userMessage(err, "Checkout failed. Please try again."),
		}))
		return
	}

	if err := h.carts.Clear(w, r); err != nil {
		slog.Error("clear cart after checkout", "error", err, "order_id", order.ID)
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
