// Package cart persists the in-progress order for a browser. Every
// mutation writes the whole cart through to a signed cookie, so the cart
// survives reloads without any server-side record.
package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"

	"github.com/mystore/storefront/internal/domain"
)

// cartCookie is the durable client storage key for the cart.
const cartCookie = "cart"

// valueKey is the single slot used inside the cookie's value map.
const valueKey = "v"

const maxAge = 30 * 86400 // 30 days

// payloadVersion guards the persisted shape. Unknown versions are
// discarded the same way malformed payloads are.
const payloadVersion = 1

type payload struct {
	Version int           `json:"v"`
	Items   []itemPayload `json:"items"`
}

type itemPayload struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Store reads and writes the cart cookie. It is safe for concurrent use.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a Store signing the cart cookie with secret.
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

// Get hydrates the cart from the request. A missing, malformed, or
// unknown-version payload yields an empty cart, never an error.
func (s *Store) Get(r *http.Request) domain.Cart {
	sess, _ := s.cookies.Get(r, cartCookie)
	raw, _ := sess.Values[valueKey].(string)
	if raw == "" {
		return domain.Cart{}
	}

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		slog.Debug("discarding malformed cart cookie", "error", err)
		return domain.Cart{}
	}
	if p.Version != payloadVersion {
		slog.Debug("discarding cart cookie with unknown version", "version", p.Version)
		return domain.Cart{}
	}

	items := make([]domain.CartItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = domain.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return domain.Cart{Items: items}
}

// Add merges the product into the cart and writes it through.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, p domain.Product) (domain.Cart, error) {
	cart := s.Get(r)
	cart.Add(p)
	if err := s.persist(w, r, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// Remove deletes the line for productID, if present, and writes through.
func (s *Store) Remove(w http.ResponseWriter, r *http.Request, productID int64) (domain.Cart, error) {
	cart := s.Get(r)
	cart.Remove(productID)
	if err := s.persist(w, r, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// Clear empties the cart and writes through.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	return s.persist(w, r, domain.Cart{})
}

func (s *Store) persist(w http.ResponseWriter, r *http.Request, cart domain.Cart) error {
	items := make([]itemPayload, len(cart.Items))
	for i, it := range cart.Items {
		items[i] = itemPayload{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}

	encoded, err := json.Marshal(payload{Version: payloadVersion, Items: items})
	if err != nil {
		return fmt.Errorf("encode cart payload: %w", err)
	}

	sess, _ := s.cookies.Get(r, cartCookie)
	sess.Values[valueKey] = string(encoded)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save cart cookie: %w", err)
	}
	return nil
}
