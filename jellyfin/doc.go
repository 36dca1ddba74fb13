// Package jellyfin is a typed client for the Jellyfin media server HTTP API.
//
// A Client couples a validated server base URL with an optional session
// token. Connect builds an unauthenticated client without touching the
// network; ConnectWithCredentials and ConnectWithUserID authenticate in one
// step. Every operation takes a context and returns errors from a closed
// taxonomy (NetworkError, URLParseError, HTTPError, ErrAuthNotFound) so
// callers can branch on failure origin without inspecting transport
// internals. The package never retries, logs, or persists anything; session
// persistence for the CLI lives in internal/session.
package jellyfin
