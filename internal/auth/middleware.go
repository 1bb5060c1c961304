package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

const principalKey = "auth_principal"

// Login and unauthorized redirect targets for the gate.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Principal represents the authenticated caller.
type Principal struct {
	StaffID    string
	Role       domain.Role
	Department string
}

// Gate enforces role-based access on every request under the admin prefix.
// All other paths pass through unchanged; the login page is always public.
type Gate struct {
	tokens *TokenManager
	prefix string
	cookie string
}

// NewGate constructs the authorization gate.
func NewGate(tokens *TokenManager, adminPrefix, cookieName string) *Gate {
	return &Gate{tokens: tokens, prefix: adminPrefix, cookie: cookieName}
}

// Handle inspects (path, session token) and allows, or redirects to the
// login page (no session) or the unauthorized page (insufficient role).
func (g *Gate) Handle(c *fiber.Ctx) error {
	if !strings.HasPrefix(c.Path(), g.prefix) {
		return c.Next()
	}

	tokenStr := g.sessionToken(c)
	if tokenStr == "" {
		return c.Redirect(LoginPath, http.StatusFound)
	}

	claims, err := g.tokens.ParseToken(tokenStr)
	if err != nil {
		return c.Redirect(LoginPath, http.StatusFound)
	}

	if !claims.Role.Privileged() {
		return c.Redirect(UnauthorizedPath, http.StatusFound)
	}

	c.Locals(principalKey, &Principal{
		StaffID:    claims.StaffID,
		Role:       claims.Role,
		Department: claims.Department,
	})
	return c.Next()
}

// sessionToken reads the session cookie, falling back to a bearer header.
func (g *Gate) sessionToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(g.cookie); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
