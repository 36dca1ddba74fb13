// Package session persists jellyctl login state between invocations.
//
// The jellyfin client library deliberately holds its token in memory only;
// this package stores the token, server address, and device identifier in a
// JSON file so repeated CLI runs reuse one session instead of
// re-authenticating. A file lock serializes concurrent invocations.
package session
