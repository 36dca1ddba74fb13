// Package logging builds the slog logger used by jellyctl.
//
// The client library itself never logs; commands construct a logger here from
// config so verbose runs can trace request flow without touching the library.
package logging
