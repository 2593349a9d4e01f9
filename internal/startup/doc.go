// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// The following environment variables are supported:
//
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//   - COLLECT_WORKERS: Concurrent filesystem calls (default: 2 per CPU, max 64)
//   - MAX_REQUEST_PATHS: Maximum roots accepted by one collect request (default: 1000)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - DEBUG: Shortcut for LOG_LEVEL=debug
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//
//	go build -ldflags "-X media-collector/internal/startup.Version=1.0.0 \
//	    -X media-collector/internal/startup.Commit=$(git rev-parse --short HEAD)"
//
// # Lifecycle Logging
//
//   - [LogCollectorInit]: Filesystem concurrency and retry settings
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated]: Graceful shutdown start
//   - [LogShutdownComplete]: Shutdown completion
package startup
