package jellyfin

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPDoer abstracts http.Client.Do so transports can be swapped in tests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client couples a Jellyfin server address with an optional session token and
// issues all API operations. A Client is safe for concurrent use; the token
// is written once per successful authentication and read-locked everywhere
// else. Nothing clears the token; construct a fresh Client for a clean slate.
type Client struct {
	baseURL *url.URL
	http    HTTPDoer
	device  DeviceProfile

	authMu sync.RWMutex
	auth   *AuthenticationResult
}

// Option customises Client construction.
type Option func(*Client)

// WithHTTPClient overrides the HTTP transport used for all requests.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

// WithDevice overrides the device identity reported to the server.
func WithDevice(profile DeviceProfile) Option {
	return func(c *Client) {
		c.device = profile
	}
}

// WithToken seeds the client with a previously issued session token, as if a
// successful authentication had already happened. Callers persisting sessions
// across processes use this to resume without re-authenticating.
func WithToken(token string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			return
		}
		c.auth = &AuthenticationResult{AccessToken: trimmed}
	}
}

// Connect builds an unauthenticated Client for the given base URL. The URL is
// parsed and validated but no network request is made; the first real call
// happens on authentication or Call. A trailing slash is tolerated.
func Connect(rawURL string, opts ...Option) (*Client, error) {
	parsed, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	client.device = client.device.withDefaults()
	return client, nil
}

// ConnectWithCredentials builds a Client and authenticates it with a username
// and password in one step.
func ConnectWithCredentials(ctx context.Context, rawURL, username, password string, opts ...Option) (*Client, error) {
	client, err := Connect(rawURL, opts...)
	if err != nil {
		return nil, err
	}
	if err := client.AuthenticateUserByName(ctx, username, password); err != nil {
		return nil, err
	}
	return client, nil
}

// ConnectWithUserID builds a Client and authenticates it with a user ID and
// password in one step.
func ConnectWithUserID(ctx context.Context, rawURL, userID, password string, opts ...Option) (*Client, error) {
	client, err := Connect(rawURL, opts...)
	if err != nil {
		return nil, err
	}
	if err := client.AuthenticateUserByID(ctx, userID, password); err != nil {
		return nil, err
	}
	return client, nil
}

// BaseURL returns the validated server address the client was built with.
func (c *Client) BaseURL() *url.URL {
	copied := *c.baseURL
	return &copied
}

// Token returns the current session token, if any.
func (c *Client) Token() (string, bool) {
	c.authMu.RLock()
	defer c.authMu.RUnlock()
	if c.auth == nil || c.auth.AccessToken == "" {
		return "", false
	}
	return c.auth.AccessToken, true
}

// Auth returns a copy of the full authentication result, if any.
func (c *Client) Auth() (AuthenticationResult, bool) {
	c.authMu.RLock()
	defer c.authMu.RUnlock()
	if c.auth == nil {
		return AuthenticationResult{}, false
	}
	return *c.auth, true
}

// AuthenticateUserByName authenticates against /Users/AuthenticateByName with
// a username and password and stores the returned session token. A 2xx
// response without an access token yields ErrAuthNotFound.
func (c *Client) AuthenticateUserByName(ctx context.Context, username, password string) error {
	body := map[string]string{
		"Username": username,
		"Pw":       password,
	}
	return c.authenticate(ctx, "/Users/AuthenticateByName", nil, body)
}

// AuthenticateUserByID authenticates against /Users/{id}/Authenticate with a
// user ID and password and stores the returned session token. The password
// travels both in plain form and SHA1-hashed, matching the legacy endpoint.
func (c *Client) AuthenticateUserByID(ctx context.Context, userID, password string) error {
	query := url.Values{}
	query.Set("pw", password)
	query.Set("password", fmt.Sprintf("%x", sha1.Sum([]byte(password))))
	path := fmt.Sprintf("/Users/%s/Authenticate", url.PathEscape(userID))
	return c.authenticate(ctx, path, query, nil)
}

func (c *Client) authenticate(ctx context.Context, path string, query url.Values, body any) error {
	var result AuthenticationResult
	if err := c.doJSON(ctx, http.MethodPost, path, query, body, anonymousAuth, &result); err != nil {
		return err
	}
	if strings.TrimSpace(result.AccessToken) == "" {
		return ErrAuthNotFound
	}

	c.authMu.Lock()
	c.auth = &result
	c.authMu.Unlock()
	return nil
}

// parseBaseURL validates that rawURL is an absolute http or https URL.
func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(rawURL), "/")
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, &URLParseError{Err: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &URLParseError{Err: fmt.Errorf("unsupported scheme %q in %q", parsed.Scheme, trimmed)}
	}
	if parsed.Host == "" {
		return nil, &URLParseError{Err: fmt.Errorf("missing host in %q", trimmed)}
	}
	return parsed, nil
}
