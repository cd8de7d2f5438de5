// Package view renders the storefront pages and the fragments patched over
// SSE. Components are built with templ's html/template interop so handlers
// and datastar patches work with templ.Component values throughout.
package view

import (
	"html/template"
	"time"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"github.com/mystore/storefront/internal/domain"
)

// Frame is the data every full page needs: the chrome around the content.
type Frame struct {
	Title     string
	Session   *domain.Session
	CartCount int
}

// CatalogData renders the catalog page and the product grid fragment.
type CatalogData struct {
	Frame
	Products []domain.Product
	Query    string
	Err      string
}

// AuthData renders the login and register forms. Name and Email echo the
// submitted values back so a failed form stays editable.
type AuthData struct {
	Frame
	Name  string
	Email string
	Err   string
}

// CartData renders the cart page and the cart contents fragment.
type CartData struct {
	Frame
	Cart domain.Cart
	Err  string
}

// OrdersData renders the orders page shell; the list itself arrives as a
// fragment once the history fetch settles.
type OrdersData struct {
	Frame
}

// OrdersListData renders the orders list fragment.
type OrdersListData struct {
	Orders []domain.Order
	Err    string
}

// ToastData renders the transient notification region.
type ToastData struct {
	Message string
	IsError bool
}

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "$ " + d.StringFixed(2)
	},
	"datefmt": func(t time.Time) string {
		return t.Format("01/02/2006 15:04")
	},
}

var pages = template.Must(template.New("storefront").Funcs(funcs).Parse(
	baseHTML + catalogHTML + authHTML + cartHTML + ordersHTML + fragmentsHTML,
))

func component(name string, data any) templ.Component {
	t := pages.Lookup(name)
	if t == nil {
		panic("view: unknown template " + name)
	}
	return templ.FromGoHTML(t, data)
}

// CatalogPage renders the home page: search box plus product grid.
func CatalogPage(d CatalogData) templ.Component {
	d.Title = "Products"
	return component("page/catalog", d)
}

// ProductGrid renders the grid fragment patched on every search keystroke.
func ProductGrid(products []domain.Product, sess *domain.Session) templ.Component {
	return component("fragment/product-grid", CatalogData{
		Frame:    Frame{Session: sess},
		Products: products,
	})
}

// LoginPage renders the login form.
func LoginPage(d AuthData) templ.Component {
	d.Title = "Sign in"
	return component("page/login", d)
}

// RegisterPage renders the account creation form.
func RegisterPage(d AuthData) templ.Component {
	d.Title = "Create account"
	return component("page/register", d)
}

// CartPage renders the cart page.
func CartPage(d CartData) templ.Component {
	d.Title = "Your cart"
	return component("page/cart", d)
}

// CartContents renders the cart fragment patched after add/remove/clear.
func CartContents(cart domain.Cart, errMsg string) templ.Component {
	return component("fragment/cart-root", CartData{Cart: cart, Err: errMsg})
}

// CartBadge renders the header badge showing the unit count.
func CartBadge(count int) templ.Component {
	return component("fragment/cart-badge", count)
}

// OrdersPage renders the orders shell with its loading skeleton.
func OrdersPage(d OrdersData) templ.Component {
	d.Title = "Your orders"
	return component("page/orders", d)
}

// OrdersList renders the order history fragment.
func OrdersList(d OrdersListData) templ.Component {
	return component("fragment/orders-list", d)
}

// Toast renders the transient notification fragment.
func Toast(message string, isError bool) templ.Component {
	return component("fragment/toast", ToastData{Message: message, IsError: isError})
}
