// Package handlers provides HTTP request handlers for the media collector API.
//
// It includes handlers for:
//   - Collecting media files under a set of root paths
//   - Health, liveness and readiness probes
//   - Version information and Prometheus metrics
package handlers
