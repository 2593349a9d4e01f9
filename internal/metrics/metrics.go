package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_collector_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_collector_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Collect invocation metrics
var (
	CollectInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_invocations_total",
			Help: "Total number of collect invocations",
		},
		[]string{"outcome"}, // "success", "no_valid_files"
	)

	CollectDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_collector_invocation_duration_seconds",
			Help:    "Collect invocation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	CollectRoots = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_collector_invocation_roots",
			Help:    "Number of root paths per collect invocation",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000},
		},
	)

	CollectFilesFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_files_found_total",
			Help: "Total number of media files returned by collect invocations",
		},
		[]string{"type"}, // "audio", "video"
	)

	CollectFilesPerInvocation = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_collector_invocation_files",
			Help:    "Number of media files returned per collect invocation",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
	)

	CollectPathsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_paths_skipped_total",
			Help: "Total number of paths that contributed nothing because of a filesystem failure",
		},
		[]string{"reason"},
	)

	CollectDuplicates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_collector_duplicates_total",
			Help: "Total number of paths dropped because their identity was already claimed",
		},
	)

	CollectDirectoriesVisited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_collector_directories_visited_total",
			Help: "Total number of directories expanded",
		},
	)

	CollectFilesIgnored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_collector_files_ignored_total",
			Help: "Total number of regular files skipped for a non-media extension",
		},
	)

	CollectLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_collector_last_invocation_timestamp",
			Help: "Timestamp of the last completed collect invocation",
		},
	)

	CollectInvocationsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_collector_invocations_active",
			Help: "Number of collect invocations currently running",
		},
	)

	CollectIOSlots = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_collector_io_slots",
			Help: "Filesystem call slots of the collector",
		},
		[]string{"state"}, // "in_use", "capacity"
	)

	CollectTraversalSlots = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_collector_traversal_slots",
			Help: "Traversal goroutine slots of the collector",
		},
		[]string{"state"}, // "in_use", "capacity"
	)
)

// Filesystem operation metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_collector_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_filesystem_operation_errors_total",
			Help: "Total number of failed filesystem operations",
		},
		[]string{"operation"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_filesystem_retry_attempts_total",
			Help: "Total number of filesystem operation retries",
		},
		[]string{"operation"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_filesystem_retry_success_total",
			Help: "Total number of filesystem operations that succeeded after a retry",
		},
		[]string{"operation"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_filesystem_retry_failures_total",
			Help: "Total number of filesystem operations that failed after all retries",
		},
		[]string{"operation"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_collector_filesystem_stale_errors_total",
			Help: "Total number of ESTALE errors returned by the filesystem",
		},
		[]string{"operation"},
	)
)

// Go runtime metrics
var (
	GoMemAllocBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_collector_go_mem_alloc_bytes",
			Help: "Current heap allocation in bytes",
		},
	)

	GoMemSysBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_collector_go_mem_sys_bytes",
			Help: "Total memory obtained from the OS in bytes",
		},
	)

	GoMemLimitBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_collector_go_mem_limit_bytes",
			Help: "Configured Go memory limit in bytes (0 if unlimited)",
		},
	)

	GoGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_collector_goroutines",
			Help: "Number of goroutines, including traversal goroutines of running invocations",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_collector_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
