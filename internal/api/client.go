// Package api implements the client for the remote store API. It fills the
// data-access role behind the domain gateway interfaces: every product,
// credential, and order this application shows lives behind these endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mystore/storefront/internal/domain"
)

// Client calls the remote store API. It is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the API rooted at baseURL. Requests that do not
// settle within timeout are abandoned; no call is ever retried.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", domain.ErrInvalidInput, baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}, nil
}

// Products fetches the full product list.
// GET /products
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return toProducts(dtos), nil
}

// Login exchanges credentials for a bearer token and user snapshot.
// POST /auth/login
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var dto credentialsDTO
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &dto); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	creds := dto.toDomain()
	return &creds, nil
}

// Signup registers a new account and returns its first credentials.
// POST /auth/signup
func (c *Client) Signup(ctx context.Context, name, email, password string) (*domain.Credentials, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var dto credentialsDTO
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", body, &dto); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	creds := dto.toDomain()
	return &creds, nil
}

// CreateOrder submits the checkout draft under the given bearer token.
// POST /orders
func (c *Client) CreateOrder(ctx context.Context, token string, draft domain.OrderDraft) (*domain.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodPost, "/orders", token, toOrderDraftDTO(draft), &dto); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order := dto.toDomain()
	return &order, nil
}

// MyOrders fetches the order history of the token's user.
// GET /orders/me
func (c *Client) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders/me", token, nil, &dtos); err != nil {
		return nil, fmt.Errorf("list my orders: %w", err)
	}
	orders := make([]domain.Order, len(dtos))
	for i, dto := range dtos {
		orders[i] = dto.toDomain()
	}
	return orders, nil
}

// do issues one request and decodes a 2xx response body into out. Non-2xx
// responses become a *RemoteError carrying the server's message verbatim
// when one is present. Transport failures wrap domain.ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// remoteError turns a non-2xx response into a *RemoteError. The body's
// message field is used verbatim when present.
func remoteError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	// A missing or unparseable body just means no server message.
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	return &RemoteError{StatusCode: resp.StatusCode, Message: payload.Message}
}
