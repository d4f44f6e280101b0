// Package config loads, normalizes, and validates mediasort configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files so the CLI can pick up a standing
// source/destination/owner setup without repeating flags. Flag values
// always take precedence over file values.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
