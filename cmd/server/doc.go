// Package main is the entry point for the FileOps backend server.
//
// The server exposes every filesystem facade operation as a dispatchable
// tool over HTTP.
//
// The server provides:
//   - REST API for file and directory operations
//   - Tool catalog discovery
//   - Prometheus metrics
//   - Rate limiting and request IDs
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -root /srv/files
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
