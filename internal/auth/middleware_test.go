package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

func newGateApp(t *testing.T) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager("test-secret", time.Hour)
	gate := NewGate(tm, "/admin", "session")

	app := fiber.New()
	app.Use(gate.Handle)
	app.Get("/admin/staff", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/projects", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, tm
}

func sessionFor(t *testing.T, tm *TokenManager, role domain.Role) string {
	t.Helper()
	token, _, err := tm.GenerateToken(&domain.Staff{ID: "staff-1", Role: role, Department: "Ops"})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return token
}

func TestGateRedirectsAnonymousToLogin(t *testing.T) {
	app, _ := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/staff", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != LoginPath {
		t.Errorf("Location = %q, want %q", loc, LoginPath)
	}
}

func TestGateRedirectsNonPrivilegedToUnauthorized(t *testing.T) {
	app, tm := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/staff", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: sessionFor(t, tm, domain.RoleDeveloper)})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != UnauthorizedPath {
		t.Errorf("Location = %q, want %q", loc, UnauthorizedPath)
	}
}

func TestGateAllowsPrivilegedRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleManager} {
		app, tm := newGateApp(t)

		req := httptest.NewRequest(http.MethodGet, "/admin/staff", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: sessionFor(t, tm, role)})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("role %s: status = %d, want 200", role, resp.StatusCode)
		}
	}
}

func TestGateRedirectsInvalidToken(t *testing.T) {
	app, _ := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/staff", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "garbage"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if loc := resp.Header.Get("Location"); loc != LoginPath {
		t.Errorf("Location = %q, want %q", loc, LoginPath)
	}
}

func TestGateIgnoresPublicPaths(t *testing.T) {
	app, _ := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGateAcceptsBearerFallback(t *testing.T) {
	app, tm := newGateApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/staff", nil)
	req.Header.Set("Authorization", "Bearer "+sessionFor(t, tm, domain.RoleAdmin))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
