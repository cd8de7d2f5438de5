package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of a placed order: the product snapshot as it was
// at checkout time, plus the quantity ordered.
type OrderItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns unit price times quantity for this line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a placed order as returned by the remote store API. It is
// created server-side in response to checkout and read-only here.
type Order struct {
	ID        string
	CreatedAt time.Time
	Items     []OrderItem
	Total     decimal.Decimal
	Status    string
}

// Reference returns the short human-facing order reference: the first
// dash-separated segment of the ID, upper-cased.
func (o Order) Reference() string {
	ref, _, _ := strings.Cut(o.ID, "-")
	return strings.ToUpper(ref)
}

// OrderDraft is the checkout submission: the authenticated user, the cart
// lines as (product snapshot, quantity) pairs, and the precomputed total.
type OrderDraft struct {
	UserID int64
	Items  []CartItem
	Total  decimal.Decimal
}

// OrderGateway defines the remote order operations. Both calls carry the
// bearer token of the session placing or reading the orders.
type OrderGateway interface {
	CreateOrder(ctx context.Context, token string, draft OrderDraft) (*Order, error)
	MyOrders(ctx context.Context, token string) ([]Order, error)
}
