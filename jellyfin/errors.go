package jellyfin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is implemented by every failure kind this package returns. The set is
// closed: NetworkError, URLParseError, HTTPError, and AuthNotFoundError cover
// all failure paths, so callers need a single errors.As/errors.Is ladder.
type Error interface {
	error
	jellyfinError()
}

// NetworkError wraps a transport-layer failure (connection refused, timeout,
// DNS, TLS). The underlying error is available through Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("jellyfin: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (*NetworkError) jellyfinError() {}

// URLParseError wraps a failure to parse or validate the server base URL.
type URLParseError struct {
	Err error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("jellyfin: invalid server URL: %v", e.Err)
}

func (e *URLParseError) Unwrap() error { return e.Err }

func (*URLParseError) jellyfinError() {}

// AuthNotFoundError reports an authentication exchange that completed without
// yielding a usable access token. Use ErrAuthNotFound with errors.Is.
type AuthNotFoundError struct{}

func (*AuthNotFoundError) Error() string { return "jellyfin: authentication token not found" }

func (*AuthNotFoundError) jellyfinError() {}

// ErrAuthNotFound is returned when the server completed an authentication
// request but the response carried no access token, or when an operation
// requiring authentication runs on an unauthenticated client.
var ErrAuthNotFound = &AuthNotFoundError{}

// HTTPError reports a completed HTTP exchange with a non-2xx status. Message
// is taken from the response body when the server supplied one; the remaining
// fields carry the problem-details payload Jellyfin attaches to some errors.
type HTTPError struct {
	Status  int
	Message string

	Type     string
	Title    string
	Detail   string
	Instance string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("jellyfin: request failed (status %d): %s", e.Status, e.Message)
	if e.Title != "" && e.Title != e.Message {
		msg += ", title: " + e.Title
	}
	if e.Detail != "" {
		msg += ", detail: " + e.Detail
	}
	return msg
}

func (*HTTPError) jellyfinError() {}

// problemDetails mirrors the RFC 7807 style body Jellyfin returns on errors.
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
	Message  string `json:"message"`
}

// newHTTPError builds an HTTPError from a non-2xx status and its body. The
// body may be empty, plain text, or a problem-details JSON document.
func newHTTPError(status int, body []byte) *HTTPError {
	herr := &HTTPError{Status: status}

	trimmed := strings.TrimSpace(string(body))
	var details problemDetails
	if trimmed != "" && json.Unmarshal(body, &details) == nil {
		herr.Type = details.Type
		herr.Title = details.Title
		herr.Detail = details.Detail
		herr.Instance = details.Instance
		switch {
		case details.Message != "":
			herr.Message = details.Message
		case details.Title != "":
			herr.Message = details.Title
		case details.Detail != "":
			herr.Message = details.Detail
		}
	}
	if herr.Message == "" {
		herr.Message = trimmed
	}
	if herr.Message == "" {
		herr.Message = http.StatusText(status)
	}
	return herr
}
