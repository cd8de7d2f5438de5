package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mystore/storefront/internal/api"
	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/handler"
	"github.com/mystore/storefront/internal/service"
	"github.com/mystore/storefront/internal/session"
)

// fakeStoreAPI stands in for the remote store backend. It serves the fixed
// product list, accepts one known login, and records order submissions.
type fakeStoreAPI struct {
	srv *httptest.Server

	mu            sync.Mutex
	failCheckout  bool
	checkoutCalls int
	ordersCreated int
	lastDraft     draftCapture
}

type draftCapture struct {
	UserID int64 `json:"userId"`
	Items  []struct {
		Product struct {
			ID    int64   `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"product"`
		Quantity int `json:"quantity"`
	} `json:"items"`
	Total float64 `json:"total"`
}

func newFakeStoreAPI(t *testing.T) *fakeStoreAPI {
	t.Helper()
	fake := &fakeStoreAPI{}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "name": "Keyboard", "description": "Mechanical keyboard", "price": 49.99},
			{"id": 2, "name": "Mouse", "description": "Wireless mouse", "price": 19.99},
		})
	})

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "sam@example.com" || body.Password != "password123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "tok-sam",
			"user":  map[string]any{"id": 7, "name": "Sam Shopper", "email": body.Email},
		})
	})

	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusCreated, map[string]any{
			"token": "tok-new",
			"user":  map[string]any{"id": 8, "name": body.Name, "email": body.Email},
		})
	})

	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		fake.checkoutCalls++

		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer tok-") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Missing token"})
			return
		}
		if fake.failCheckout {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Payment declined"})
			return
		}

		if err := json.NewDecoder(r.Body).Decode(&fake.lastDraft); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Bad order"})
			return
		}
		fake.ordersCreated++
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":        "9f3c21ab-0000-0000-0000-000000000000",
			"createdAt": time.Now().UTC().Format(time.RFC3339),
			"items":     []any{},
			"total":     fake.lastDraft.Total,
			"status":    "Processing",
		})
	})

	mux.HandleFunc("GET /orders/me", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer tok-") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Missing token"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{
				"id":        "ab12cd34-5678-90ef-0000-000000000000",
				"createdAt": "2026-08-01T10:30:00Z",
				"items": []map[string]any{
					{"product": map[string]any{"id": 2, "name": "Mouse", "price": 19.99}, "quantity": 1},
				},
				"total":  19.99,
				"status": "Delivered",
			},
		})
	})

	fake.srv = httptest.NewServer(mux)
	t.Cleanup(fake.srv.Close)
	return fake
}

func (f *fakeStoreAPI) setFailCheckout(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCheckout = v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func newTestServer(t *testing.T) (*httptest.Server, *fakeStoreAPI) {
	t.Helper()
	return newTestServerWithLimiter(t, service.NewTokenBucket(1000, 1000))
}

func newTestServerWithLimiter(t *testing.T, limiter *service.TokenBucket) (*httptest.Server, *fakeStoreAPI) {
	t.Helper()
	t.Cleanup(limiter.Stop)

	fake := newFakeStoreAPI(t)

	client, err := api.New(fake.srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}

	sessions := session.NewStore([]byte(testSessionSecret), false)
	carts := cart.NewStore([]byte(testSessionSecret), false)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, sessions, carts,
		service.NewAccountService(client),
		service.NewCatalogService(client),
		service.NewOrderService(client),
		limiter,
	)

	srv := httptest.NewServer(handler.SecurityHeaders(handler.RequestID(mux)))
	t.Cleanup(srv.Close)
	return srv, fake
}

// newBrowser builds a client that holds cookies like a browser but never
// follows redirects, so tests can assert on 303 responses directly.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func post(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Post(url, "text/plain", nil)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.PostForm(url, form)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestIntegration_RegisterBrowseCheckout(t *testing.T) {
	srv, fake := newTestServer(t)
	browser := newBrowser(t)

	// 1. Create an account; a successful signup logs straight in.
	resp, _ := postForm(t, browser, srv.URL+"/register", url.Values{
		"name":     {"New Shopper"},
		"email":    {"new@example.com"},
		"password": {"password123"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("register: expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/orders" {
		t.Fatalf("register: expected redirect to /orders, got %s", loc)
	}

	// 2. Browse the catalog as a signed-in customer.
	resp, body := get(t, browser, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Keyboard") || !strings.Contains(body, "Mouse") {
		t.Fatal("home: expected both products in the grid")
	}
	if !strings.Contains(body, "Add to cart") {
		t.Fatal("home: expected add buttons for a signed-in customer")
	}
	if !strings.Contains(body, "New Shopper") {
		t.Fatal("home: expected the customer name in the header")
	}

	// 3. Add the keyboard twice; the second add merges into one line.
	resp, body = post(t, browser, srv.URL+"/cart/items?id=1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add to cart: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Keyboard added to cart.") {
		t.Fatal("add to cart: expected confirmation toast")
	}
	post(t, browser, srv.URL+"/cart/items?id=1")

	resp, body = get(t, browser, srv.URL+"/cart")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cart: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Quantity: 2") {
		t.Fatal("cart: expected merged quantity of 2")
	}
	if !strings.Contains(body, "Total: $ 99.98") {
		t.Fatal("cart: expected total of 99.98")
	}

	// 4. Checkout submits one order and clears the cart.
	resp, _ = postForm(t, browser, srv.URL+"/checkout", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("checkout: expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/orders" {
		t.Fatalf("checkout: expected redirect to /orders, got %s", loc)
	}

	fake.mu.Lock()
	created, draft := fake.ordersCreated, fake.lastDraft
	fake.mu.Unlock()
	if created != 1 {
		t.Fatalf("expected 1 order created, got %d", created)
	}
	if draft.UserID != 8 {
		t.Fatalf("expected order for user 8, got %d", draft.UserID)
	}
	if len(draft.Items) != 1 || draft.Items[0].Quantity != 2 || draft.Items[0].Product.ID != 1 {
		t.Fatalf("unexpected order items: %+v", draft.Items)
	}
	if draft.Total != 99.98 {
		t.Fatalf("expected order total 99.98, got %v", draft.Total)
	}

	_, body = get(t, browser, srv.URL+"/cart")
	if !strings.Contains(body, "Your cart is empty.") {
		t.Fatal("cart: expected empty cart after checkout")
	}
}

func TestIntegration_CheckoutFailureKeepsCart(t *testing.T) {
	srv, fake := newTestServer(t)
	browser := newBrowser(t)

	postForm(t, browser, srv.URL+"/login", url.Values{
		"email":    {"sam@example.com"},
		"password": {"password123"},
	})
	post(t, browser, srv.URL+"/cart/items?id=2")

	fake.setFailCheckout(true)

	resp, body := postForm(t, browser, srv.URL+"/checkout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed checkout: expected 200 re-render, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Payment declined") {
		t.Fatal("failed checkout: expected the server message verbatim")
	}
	if !strings.Contains(body, "Mouse") {
		t.Fatal("failed checkout: expected the cart contents to still render")
	}

	_, body = get(t, browser, srv.URL+"/cart")
	if !strings.Contains(body, "Mouse") {
		t.Fatal("expected the cart to survive a failed checkout")
	}

	fake.mu.Lock()
	created := fake.ordersCreated
	fake.mu.Unlock()
	if created != 0 {
		t.Fatalf("expected no orders created, got %d", created)
	}
}

func TestIntegration_CheckoutRequiresSession(t *testing.T) {
	srv, fake := newTestServer(t)
	browser := newBrowser(t)

	post(t, browser, srv.URL+"/cart/items?id=1")

	resp, _ := postForm(t, browser, srv.URL+"/checkout", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}

	fake.mu.Lock()
	calls := fake.checkoutCalls
	fake.mu.Unlock()
	if calls != 0 {
		t.Fatalf("expected the order endpoint to never be hit, got %d calls", calls)
	}
}

func TestIntegration_LoginFailureShowsServerMessage(t *testing.T) {
	srv, _ := newTestServer(t)
	browser := newBrowser(t)

	resp, body := postForm(t, browser, srv.URL+"/login", url.Values{
		"email":    {"sam@example.com"},
		"password": {"wrong"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Invalid email or password") {
		t.Fatal("expected the backend message verbatim")
	}
	if !strings.Contains(body, "sam@example.com") {
		t.Fatal("expected the submitted email to be echoed back")
	}
}

func TestIntegration_LoginRateLimited(t *testing.T) {
	srv, _ := newTestServerWithLimiter(t, service.NewTokenBucket(0.0001, 2))
	browser := newBrowser(t)

	form := url.Values{"email": {"sam@example.com"}, "password": {"wrong"}}
	postForm(t, browser, srv.URL+"/login", form)
	postForm(t, browser, srv.URL+"/login", form)

	_, body := postForm(t, browser, srv.URL+"/login", form)
	if !strings.Contains(body, "Too many attempts") {
		t.Fatal("expected the third attempt to be rate limited")
	}
}

func TestIntegration_SearchFiltersGrid(t *testing.T) {
	srv, _ := newTestServer(t)
	browser := newBrowser(t)

	signals := url.QueryEscape(`{"q":"mou"}`)
	resp, body := get(t, browser, srv.URL+"/search?datastar="+signals)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Mouse") {
		t.Fatal("search: expected the matching product")
	}
	if strings.Contains(body, "Keyboard") {
		t.Fatal("search: expected non-matching products to be filtered out")
	}
}

func TestIntegration_OrdersHistory(t *testing.T) {
	srv, _ := newTestServer(t)
	browser := newBrowser(t)

	postForm(t, browser, srv.URL+"/login", url.Values{
		"email":    {"sam@example.com"},
		"password": {"password123"},
	})

	resp, body := get(t, browser, srv.URL+"/orders")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("orders page: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "orders-list") {
		t.Fatal("orders page: expected the list placeholder")
	}

	_, body = get(t, browser, srv.URL+"/orders/list")
	if !strings.Contains(body, "Order #AB12CD34") {
		t.Fatal("orders list: expected the short order reference")
	}
	if !strings.Contains(body, "Delivered") {
		t.Fatal("orders list: expected the order status")
	}
}

func TestIntegration_OrdersRedirectWithoutSession(t *testing.T) {
	srv, _ := newTestServer(t)
	browser := newBrowser(t)

	resp, _ := get(t, browser, srv.URL+"/orders")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}
}

func TestIntegration_LogoutEndsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	browser := newBrowser(t)

	postForm(t, browser, srv.URL+"/login", url.Values{
		"email":    {"sam@example.com"},
		"password": {"password123"},
	})

	resp, _ := postForm(t, browser, srv.URL+"/logout", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("logout: expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("logout: expected redirect to /login, got %s", loc)
	}

	resp, _ = get(t, browser, srv.URL+"/orders")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected the session to be gone, got %d", resp.StatusCode)
	}
}

func TestIntegration_RemoveAndClearCart(t *testing.T) {
	srv, _ := newTestServer(t)
	browser := newBrowser(t)

	post(t, browser, srv.URL+"/cart/items?id=1")
	post(t, browser, srv.URL+"/cart/items?id=2")

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/cart/items/1", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := browser.Do(req)
	if err != nil {
		t.Fatalf("DELETE /cart/items/1: %v", err)
	}
	io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", resp.StatusCode)
	}

	_, body := get(t, browser, srv.URL+"/cart")
	if strings.Contains(body, "Keyboard") {
		t.Fatal("expected the keyboard line to be removed")
	}
	if !strings.Contains(body, "Mouse") {
		t.Fatal("expected the mouse line to remain")
	}

	post(t, browser, srv.URL+"/cart/clear")

	_, body = get(t, browser, srv.URL+"/cart")
	if !strings.Contains(body, "Your cart is empty.") {
		t.Fatal("expected an empty cart after clearing")
	}
}
