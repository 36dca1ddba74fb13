// Package config loads, normalizes, and validates jellyctl configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Commands obtain settings through this
// package so they receive sanitized paths and clear validation errors; a
// missing config file resolves to defaults rather than an error.
package config
