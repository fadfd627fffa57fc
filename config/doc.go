// Package config handles application configuration loading and validation.
//
// Configuration is read from an optional config.yml, overridden by
// KOMOOTGPX_* environment variables, and validated using struct tags.
package config
