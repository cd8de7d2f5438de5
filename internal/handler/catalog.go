package handler

import (
	"log/slog"
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/service"
	"github.com/mystore/storefront/internal/view"
)

// CatalogHandler serves the home page and the live search fragment.
type CatalogHandler struct {
	catalog *service.CatalogService
	carts   *cart.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService, carts *cart.Store) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, carts: carts}
}

// HandleHome renders the catalog page. The product list is fetched once
// per render; a ?q= parameter seeds the search term so external search
// controls can deep-link into a filtered catalog.
func (h *CatalogHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := view.CatalogData{
		Frame: frame(r, h.carts),
		Query: r.URL.Query().Get("q"),
	}

	products, err := h.catalog.Search(r.Context(), data.Query)
	if err != nil {
		slog.Error("load catalog", "error", err)
		data.Err = "Could not load products. Please try again."
		render(w, r, view.CatalogPage(data))
		return
	}

	data.Products = products
	render(w, r, view.CatalogPage(data))
}

// HandleSearch recomputes the product grid for the current search term and
// patches it in place via SSE. Called on every keystroke; no debounce.
func (h *CatalogHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var signals struct {
		Q string `json:"q"`
	}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)

	products, err := h.catalog.Search(r.Context(), signals.Q)
	if err != nil {
		slog.Error("search catalog", "error", err, "term", signals.Q)
		sse.PatchElementTempl(view.Toast("Could not load products.", true))
		return
	}

	sse.PatchElementTempl(view.ProductGrid(products, SessionFromContext(r.Context())))
}
