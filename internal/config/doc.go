// Package config loads, normalizes, and validates plagcheck configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files. The Config type centralizes every knob the
// decoder, normalizer, vectorizer, scorer and logger need so the CLI can
// resolve settings in one pass.
//
// Always obtain settings through this package so downstream code receives
// canonical policy names and clear validation errors.
package config
