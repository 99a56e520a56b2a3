// Package config loads runtime configuration from an optional YAML file
// with RAGSTORE_* environment variable overrides. A .env file in the
// working directory is honored when present.
package config
