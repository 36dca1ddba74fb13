package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// authMode selects which MediaBrowser header variant a request carries.
type authMode int

const (
	// anonymousAuth always sends an empty token, even when one is stored.
	anonymousAuth authMode = iota
	// sessionAuth attaches the stored token when authentication has happened.
	sessionAuth
)

// maxErrorBody bounds how much of an error response body is retained.
const maxErrorBody = 64 << 10

// Call issues a generic request against the server. When the client is
// authenticated the session token rides along in the authorization header;
// otherwise the request goes out anonymously. The raw response body is
// returned for 2xx statuses, every other outcome maps onto the package error
// taxonomy.
func (c *Client) Call(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	_, data, err := c.do(ctx, method, path, nil, body, "", sessionAuth)
	return data, err
}

// do performs one HTTP exchange and normalizes its failure modes. It returns
// the response status and body for 2xx exchanges.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, mode authMode) (int, []byte, error) {
	endpoint := c.baseURL.String() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, nil, &URLParseError{Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token := ""
	if mode == sessionAuth {
		if current, ok := c.Token(); ok {
			token = current
		}
	}
	req.Header.Set("X-Emby-Authorization", c.device.authHeader(token))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, nil, newHTTPError(resp.StatusCode, data)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &NetworkError{Err: err}
	}
	return resp.StatusCode, data, nil
}

// doJSON sends an optional JSON body and decodes a JSON response into out.
// A 2xx response that fails to decode is treated as a protocol error and
// surfaces as an HTTPError carrying the decode failure.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, mode authMode, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Err: fmt.Errorf("encode request body: %w", err)}
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	status, data, err := c.do(ctx, method, path, query, reader, contentType, mode)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &HTTPError{
			Status:  status,
			Message: fmt.Sprintf("malformed response body: %v", err),
		}
	}
	return nil
}
