// Package metrics provides Prometheus instrumentation for media-collector.
//
// All metrics are registered with the default Prometheus registry through
// promauto and prefixed with "media_collector_".
//
// # Metric Categories
//
// ## HTTP Metrics
//
//   - HTTPRequestsTotal: Counter of requests by method, route template, and status
//   - HTTPRequestDuration: Histogram of request duration by method and route template
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Collect Metrics
//
// Recorded once per top-level invocation by the observer returned from
// [NewCollectorObserver]:
//   - CollectInvocationsTotal: Counter by outcome (success/no_valid_files)
//   - CollectDuration: Histogram of invocation duration
//   - CollectRoots: Histogram of root paths per invocation
//   - CollectFilesFound: Counter of returned files by type (audio/video)
//   - CollectFilesPerInvocation: Histogram of returned files per invocation
//   - CollectPathsSkipped: Counter of skipped paths by reason
//   - CollectDuplicates: Counter of paths dropped as already claimed
//   - CollectDirectoriesVisited: Counter of expanded directories
//   - CollectFilesIgnored: Counter of regular files with other extensions
//   - CollectLastRunTimestamp: Gauge of the last completed invocation
//   - CollectInvocationsActive: Gauge of running invocations
//   - CollectIOSlots, CollectTraversalSlots: Gauges of held and available
//     collector slots by state (in_use/capacity)
//
// ## Filesystem Metrics
//
// Recorded by the observer returned from [NewFilesystemObserver], labelled
// by operation (evalsymlinks/stat/readdir):
//   - FilesystemOperationDuration, FilesystemOperationErrors
//   - FilesystemRetryAttempts, FilesystemRetrySuccess, FilesystemRetryFailures
//   - FilesystemStaleErrors
//
// ## Runtime Metrics
//
//   - GoMemAllocBytes, GoMemSysBytes, GoMemLimitBytes, GoGoroutines
//
// ## Application Info
//
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Collector
//
// [Collector] periodically reads a [StatsProvider] and refreshes the gauges
// that are not driven by events:
//
//	collector := metrics.NewCollector(statsProvider, time.Minute)
//	collector.Start()
//	defer collector.Stop()
//
// # Prometheus Queries
//
// Invocations that found nothing:
//
//	sum(rate(media_collector_invocations_total{outcome="no_valid_files"}[5m]))
//
// P95 invocation time:
//
//	histogram_quantile(0.95, sum(rate(media_collector_invocation_duration_seconds_bucket[5m])) by (le))
//
// Stale file handles hit on network mounts:
//
//	sum(rate(media_collector_filesystem_stale_errors_total[1h])) by (operation)
package metrics
