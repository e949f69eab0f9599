package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is a thin HTTP client for the Gatehouse accounts service.
// Methods that act on an existing session take the opaque session token
// returned by Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns its public profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	var profile Profile
	if err := c.doJSON(ctx, http.MethodPost, "/v1/accounts", "", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/sessions", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes the session behind token.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/sessions", token, nil, nil)
}

// Me returns the profile of the account that owns the session.
func (c *Client) Me(ctx context.Context, token string) (*Profile, error) {
	var profile Profile
	if err := c.doJSON(ctx, http.MethodGet, "/v1/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial profile update and returns the updated
// profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*Profile, error) {
	var profile Profile
	if err := c.doJSON(ctx, http.MethodPatch, "/v1/me", token, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Readyz calls the readiness probe. A degraded service yields an *APIError
// with the 503 status code.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", "", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// doJSON performs a request with an optional JSON body and bearer token,
// decoding a JSON response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
