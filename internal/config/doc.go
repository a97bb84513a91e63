// Package config loads, normalizes, and validates exporter configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SOMTODAY_BASE_URL environment
// fallback. Command-line flags are applied on top of the loaded Config by the
// CLI, so the bearer token never lives here.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
