// Package config resolves cargo-brew's configuration from embedded
// TOML defaults and CARGO_BREW_* environment variables.
package config
