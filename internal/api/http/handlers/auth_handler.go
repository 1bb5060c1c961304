package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/config"
	"github.com/spec-kit/timesheet-service/internal/service"
)

// AuthHandler drives the external identity provider sign-in flow.
type AuthHandler struct {
	provider auth.OAuthProvider
	states   auth.StateStore
	identity *service.IdentityService
	authCfg  config.AuthConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(provider auth.OAuthProvider, states auth.StateStore, identity *service.IdentityService, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{provider: provider, states: states, identity: identity, authCfg: authCfg}
}

// Login handles GET /auth/login by redirecting to the provider.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	state, err := h.states.Issue(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "failed to start sign-in")
	}
	return c.Redirect(h.provider.LoginURL(state), http.StatusFound)
}

// Callback handles GET /auth/callback. It validates the state nonce,
// exchanges the code, resolves the staff identity and sets the session
// cookie. Any failure denies the session.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return fiber.NewError(http.StatusBadRequest, "code required")
	}
	if err := h.states.Validate(c.UserContext(), c.Query("state")); err != nil {
		return fiber.NewError(http.StatusUnauthorized, "invalid login state")
	}

	assertion, err := h.provider.ExchangeCode(c.UserContext(), code)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, "identity verification failed")
	}

	_, token, expiresAt, err := h.identity.SignIn(c.UserContext(), *assertion)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, "sign-in failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.authCfg.SessionCookie,
		Value:    token,
		Expires:  expiresAt,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(h.authCfg.AdminPathPrefix, http.StatusFound)
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.authCfg.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(auth.LoginPath, http.StatusFound)
}

// LoginPage handles GET /login, the public page the gate redirects to.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "sign in required",
		"login_url": "/auth/login",
	})
}

// UnauthorizedPage handles GET /unauthorized for authenticated callers
// without a privileged role.
func (h *AuthHandler) UnauthorizedPage(c *fiber.Ctx) error {
	return c.Status(http.StatusForbidden).JSON(fiber.Map{
		"error": "admin or manager role required",
	})
}
