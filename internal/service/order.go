package service

import (
	"context"
	"fmt"

	"github.com/mystore/storefront/internal/domain"
)

// OrderService places orders and reads order history through the remote
// store API.
type OrderService struct {
	orders domain.OrderGateway
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders domain.OrderGateway) *OrderService {
	return &OrderService{orders: orders}
}

// Checkout submits the cart as one order under the session's credentials.
// It refuses to build a request without a valid session or with an empty
// cart; on any failure the caller's cart is left untouched.
func (s *OrderService) Checkout(ctx context.Context, sess *domain.Session, cart domain.Cart) (*domain.Order, error) {
	if !sess.Valid() {
		return nil, domain.ErrUnauthorized
	}
	if cart.IsEmpty() {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrInvalidInput)
	}

	draft := domain.OrderDraft{
		UserID: sess.User.ID,
		Items:  cart.Items,
		Total:  cart.Total(),
	}

	order, err := s.orders.CreateOrder(ctx, sess.Token, draft)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return order, nil
}

// History fetches the session user's order history in one request.
func (s *OrderService) History(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	if !sess.Valid() {
		return nil, domain.ErrUnauthorized
	}

	orders, err := s.orders.MyOrders(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("fetch order history: %w", err)
	}
	return orders, nil
}
