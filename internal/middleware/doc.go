// Package middleware provides HTTP middleware for the media collector.
//
// It includes:
//   - Request logging in W3C Extended Log Format, tagged with the collect invocation id
//   - Prometheus request metrics labelled by route template
package middleware
