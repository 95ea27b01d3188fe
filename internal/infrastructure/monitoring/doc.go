// Package monitoring provides Prometheus metrics for the backend.
//
// Metrics cover the HTTP surface (request counts, latency) and the
// filesystem facade (operations by outcome, per-operation latency, failure
// categories, bytes moved). Collection is always on; exposition happens via
// the standard /metrics endpoint.
package monitoring
