// Package main provides the entry point for media-collector.
//
// media-collector turns a set of filesystem paths into the mp3/mp4 files
// reachable from them. Each directory's children are expanded concurrently,
// symbolic links are followed, and every file appears once in the output
// under its resolved absolute path.
//
// # Commands
//
//   - collect PATH...: print one file per line; exit 1 with "No valid files"
//     when nothing was found. --report prints skipped paths and a summary to
//     stderr, --json prints the same payload the HTTP API returns.
//   - serve: run the HTTP API (see below) until SIGINT or SIGTERM.
//   - version: print build information.
//
// # HTTP Server
//
// serve runs two HTTP servers:
//
//  1. Main Server (default port 8080):
//     - POST /api/collect {"paths": [...]} returns {"files": [...], "invocationId": "..."}
//     - ?report=true adds skipped paths, duplicates and traversal counters
//     - 422 {"error": "No valid files"} when nothing was found, 400 on bad input
//     - /health, /healthz, /livez, /readyz, /version
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//     - Health check endpoint (/health)
//
// # Environment Variables
//
//   - PORT, METRICS_PORT, METRICS_ENABLED, LOG_HEALTH_CHECKS
//   - COLLECT_WORKERS: concurrent filesystem calls
//   - MAX_REQUEST_PATHS: maximum roots per request
//   - LOG_LEVEL, DEBUG
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM readiness starts failing, the metrics collector and
// metrics server stop, and the main server drains in-flight requests for up
// to 30 seconds.
package main
