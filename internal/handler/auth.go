package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/domain"
	"github.com/mystore/storefront/internal/service"
	"github.com/mystore/storefront/internal/session"
	"github.com/mystore/storefront/internal/view"
)

// AuthHandler serves the login and register forms and the logout action.
type AuthHandler struct {
	accounts *service.AccountService
	sessions *session.Store
	carts    *cart.Store
	limiter  *service.TokenBucket
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts *service.AccountService, sessions *session.Store, carts *cart.Store, limiter *service.TokenBucket) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, carts: carts, limiter: limiter}
}

// HandleLoginPage renders the login form.
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, view.LoginPage(view.AuthData{Frame: frame(r, h.carts)}))
}

// HandleLogin processes the login form. On success the returned token and
// user snapshot are stored together and the customer lands on the orders
// page; on failure the form re-renders with the server's message and stays
// editable.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	data := view.AuthData{
		Frame: frame(r, h.carts),
		Email: r.FormValue("email"),
	}

	if h.limiter != nil && !h.limiter.Allow(clientIP(r)) {
		data.Err = "Too many attempts. Please wait a moment and try again."
		render(w, r, view.LoginPage(data))
		return
	}

	creds, err := h.accounts.Login(r.Context(), data.Email, r.FormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			data.Err = "Email and password are required."
		} else {
			slog.Error("login", "error", err)
			data.Err = userMessage(err, "Could not sign you in. Please try again.")
		}
		render(w, r, view.LoginPage(data))
		return
	}

	if err := h.sessions.Login(w, r, *creds); err != nil {
		slog.Error("store session", "error", err)
		data.Err = "Could not sign you in. Please try again."
		render(w, r, view.LoginPage(data))
		return
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// HandleRegisterPage renders the account creation form.
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, view.RegisterPage(view.AuthData{Frame: frame(r, h.carts)}))
}

// HandleRegister processes the registration form. A successful signup logs
// the new account straight in, mirroring login.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	data := view.AuthData{
		Frame: frame(r, h.carts),
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	}

	if h.limiter != nil && !h.limiter.Allow(clientIP(r)) {
		data.Err = "Too many attempts. Please wait a moment and try again."
		render(w, r, view.RegisterPage(data))
		return
	}

	creds, err := h.accounts.Register(r.Context(), data.Name, data.Email, r.FormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			data.Err = "Name, email, and password are required."
		} else {
			slog.Error("register", "error", err)
			data.Err = userMessage(err, "Could not create your account. Please try again.")
		}
		render(w, r, view.RegisterPage(data))
		return
	}

	if err := h.sessions.Login(w, r, *creds); err != nil {
		slog.Error("store session", "error", err)
		data.Err = "Could not create your account. Please try again."
		render(w, r, view.RegisterPage(data))
		return
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// HandleLogout clears the session and returns to the login page.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		slog.Error("logout", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
