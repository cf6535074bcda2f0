// Package config loads, normalizes, and validates laneline configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML from ~/.config/laneline/config.toml or a
// project-local laneline.toml. Obtain settings through this package so
// downstream code receives a sanitized report title and canonical log
// settings.
package config
