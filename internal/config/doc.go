// Package config loads, normalizes, and validates myEPG configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/myepg/config.toml or a
// project-local myepg.toml. The Config type centralizes every knob the CLI
// and pipeline need: source list location, fetch limits, merge strategy,
// artifact paths, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical strategy/format spellings, and clear validation
// errors.
package config
