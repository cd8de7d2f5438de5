package handler

import (
	"log/slog"
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/service"
	"github.com/mystore/storefront/internal/view"
)

// OrdersHandler serves the order history page and its list fragment.
type OrdersHandler struct {
	orders *service.OrderService
	carts  *cart.Store
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(orders *service.OrderService, carts *cart.Store) *OrdersHandler {
	return &OrdersHandler{orders: orders, carts: carts}
}

// HandleOrdersPage renders the page shell with a loading skeleton; the
// list itself arrives over SSE once the history fetch settles.
func (h *OrdersHandler) HandleOrdersPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, view.OrdersPage(view.OrdersData{Frame: frame(r, h.carts)}))
}

// HandleOrdersList fetches the session user's history and patches it over
// the skeleton.
func (h *OrdersHandler) HandleOrdersList(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	orders, err := h.orders.History(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		slog.Error("fetch orders", "error", err, "request_id", RequestIDFromContext(r.Context()))
		sse.PatchElementTempl(view.OrdersList(view.OrdersListData{
			Err: userMessage(err, "Could not load your orders. Please try again."),
		}))
		return
	}

	sse.PatchElementTempl(view.OrdersList(view.OrdersListData{Orders: orders}))
}
