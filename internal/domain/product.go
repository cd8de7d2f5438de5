package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry served by the remote store API.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

// ProductSource defines the remote catalog read operations.
type ProductSource interface {
	Products(ctx context.Context) ([]Product, error)
}
