// Package config provides environment-based configuration for the backend.
//
// All settings come from environment variables with sensible defaults, so
// the service boots with zero configuration. The storage root is captured
// once at startup and stays immutable for the process lifetime.
package config
