package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spec-kit/timesheet-service/internal/config"
)

// IdentityAssertion carries the verified identity returned by the external
// provider after a successful code exchange.
type IdentityAssertion struct {
	Subject string
	Email   string
	Name    string
}

// OAuthProvider abstracts the external identity provider round trip.
type OAuthProvider interface {
	LoginURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*IdentityAssertion, error)
}

const (
	defaultAuthURLFormat  = "https://login.microsoftonline.com/%s/oauth2/v2.0/authorize"
	defaultTokenURLFormat = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	defaultUserInfoURL    = "https://graph.microsoft.com/oidc/userinfo"
)

// MicrosoftOAuthProvider implements OAuthProvider against the Microsoft
// identity platform. Endpoint URLs can be overridden for tests.
type MicrosoftOAuthProvider struct {
	cfg config.OAuthConfig
}

// NewMicrosoftOAuthProvider builds the provider, filling in default tenant
// endpoints when no overrides are configured.
func NewMicrosoftOAuthProvider(cfg config.OAuthConfig) *MicrosoftOAuthProvider {
	if cfg.AuthURL == "" {
		cfg.AuthURL = fmt.Sprintf(defaultAuthURLFormat, cfg.TenantID)
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = fmt.Sprintf(defaultTokenURLFormat, cfg.TenantID)
	}
	if cfg.UserInfoURL == "" {
		cfg.UserInfoURL = defaultUserInfoURL
	}
	return &MicrosoftOAuthProvider{cfg: cfg}
}

// LoginURL builds the provider authorization URL for the given state nonce.
func (p *MicrosoftOAuthProvider) LoginURL(state string) string {
	params := url.Values{
		"client_id":     {p.cfg.ClientID},
		"redirect_uri":  {p.cfg.RedirectURL},
		"response_type": {"code"},
		"scope":         {"openid email profile"},
		"state":         {state},
	}
	return p.cfg.AuthURL + "?" + params.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type userInfoResponse struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ExchangeCode trades the authorization code for an access token and fetches
// the caller's identity.
func (p *MicrosoftOAuthProvider) ExchangeCode(ctx context.Context, code string) (*IdentityAssertion, error) {
	token, err := p.exchangeToken(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange token: %w", err)
	}

	info, err := p.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}

	return &IdentityAssertion{
		Subject: info.Sub,
		Email:   info.Email,
		Name:    info.Name,
	}, nil
}

func (p *MicrosoftOAuthProvider) exchangeToken(ctx context.Context, code string) (*tokenResponse, error) {
	data := url.Values{
		"code":          {code},
		"client_id":     {p.cfg.ClientID},
		"client_secret": {p.cfg.ClientSecret},
		"redirect_uri":  {p.cfg.RedirectURL},
		"grant_type":    {"authorization_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("empty access token in response")
	}
	return &token, nil
}

func (p *MicrosoftOAuthProvider) fetchUserInfo(ctx context.Context, accessToken string) (*userInfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var info userInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("incomplete identity in userinfo response")
	}
	return &info, nil
}

var _ OAuthProvider = (*MicrosoftOAuthProvider)(nil)
