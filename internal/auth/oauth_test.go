package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/spec-kit/timesheet-service/internal/config"
)

func TestLoginURLCarriesStateAndClient(t *testing.T) {
	provider := NewMicrosoftOAuthProvider(config.OAuthConfig{
		ClientID:    "client-123",
		TenantID:    "tenant-1",
		RedirectURL: "http://localhost/auth/callback",
	})

	raw := provider.LoginURL("state-abc")
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid login URL: %v", err)
	}

	if !strings.Contains(parsed.Host, "login.microsoftonline.com") {
		t.Errorf("host = %q, want microsoft endpoint", parsed.Host)
	}
	q := parsed.Query()
	if q.Get("client_id") != "client-123" {
		t.Errorf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("state") != "state-abc" {
		t.Errorf("state = %q", q.Get("state"))
	}
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q", q.Get("response_type"))
	}
}

func TestExchangeCode(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.Form.Get("code") != "code-1" {
			t.Errorf("code = %q", r.Form.Get("code"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	userSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"ext-9","email":"jo@example.com","name":"Jo"}`))
	}))
	defer userSrv.Close()

	provider := NewMicrosoftOAuthProvider(config.OAuthConfig{
		ClientID:    "client-123",
		TokenURL:    tokenSrv.URL,
		UserInfoURL: userSrv.URL,
		AuthURL:     "http://unused",
	})

	assertion, err := provider.ExchangeCode(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("ExchangeCode failed: %v", err)
	}
	if assertion.Subject != "ext-9" || assertion.Email != "jo@example.com" || assertion.Name != "Jo" {
		t.Errorf("unexpected assertion: %+v", assertion)
	}
}

func TestExchangeCodeRejectsEmptyIdentity(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"tok-1"}`))
	}))
	defer tokenSrv.Close()

	userSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"","email":""}`))
	}))
	defer userSrv.Close()

	provider := NewMicrosoftOAuthProvider(config.OAuthConfig{
		TokenURL:    tokenSrv.URL,
		UserInfoURL: userSrv.URL,
		AuthURL:     "http://unused",
	})

	if _, err := provider.ExchangeCode(context.Background(), "code-1"); err == nil {
		t.Fatal("expected error for incomplete identity")
	}
}
