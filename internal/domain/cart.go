package domain

import "github.com/shopspring/decimal"

// CartItem is one line of the in-progress order: a product snapshot plus
// the quantity the customer wants.
type CartItem struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal returns unit price times quantity for this line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the ordered collection of not-yet-ordered line items. At most one
// item exists per product; adding a product that is already present bumps
// its quantity instead of duplicating the entry.
type Cart struct {
	Items []CartItem
}

// Add merges the product into the cart: an existing line for the same
// product gains one unit, otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(p Product) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == p.ID {
			c.Items[idx].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
}

// Remove deletes the line for the given product, if present.
func (c *Cart) Remove(productID int64) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the derived sum of unit price times quantity across all lines.
// It is never stored.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count returns the total number of units in the cart, for the header badge.
func (c Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
