package metrics

import (
	"errors"
	"time"

	"media-collector/internal/collector"
	"media-collector/internal/filesystem"
)

// filesystemObserver implements filesystem.Observer using the Prometheus
// metrics declared in this package.
type filesystemObserver struct{}

// NewFilesystemObserver creates an observer that records filesystem metrics
// into the Prometheus counters and histograms declared in metrics.go.
func NewFilesystemObserver() filesystem.Observer {
	return &filesystemObserver{}
}

func (o *filesystemObserver) ObserveOperation(operation string, durationSeconds float64, err error) {
	FilesystemOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
	if err != nil {
		FilesystemOperationErrors.WithLabelValues(operation).Inc()
	}
}

func (o *filesystemObserver) ObserveRetryAttempt(operation string) {
	FilesystemRetryAttempts.WithLabelValues(operation).Inc()
}

func (o *filesystemObserver) ObserveRetrySuccess(operation string) {
	FilesystemRetrySuccess.WithLabelValues(operation).Inc()
}

func (o *filesystemObserver) ObserveRetryFailure(operation string) {
	FilesystemRetryFailures.WithLabelValues(operation).Inc()
}

func (o *filesystemObserver) ObserveStaleError(operation string) {
	FilesystemStaleErrors.WithLabelValues(operation).Inc()
}

// collectorObserver implements collector.Observer.
type collectorObserver struct{}

// NewCollectorObserver creates an observer that records one sample per
// completed collect invocation.
func NewCollectorObserver() collector.Observer {
	return &collectorObserver{}
}

func (o *collectorObserver) ObserveInvocation(report *collector.Report, err error) {
	outcome := OutcomeSuccess
	if errors.Is(err, collector.ErrNoValidFiles) {
		outcome = OutcomeNoValidFiles
	}
	CollectInvocationsTotal.WithLabelValues(outcome).Inc()
	CollectLastRunTimestamp.Set(float64(time.Now().Unix()))

	if report == nil {
		return
	}

	CollectDuration.Observe(report.Duration.Seconds())
	CollectRoots.Observe(float64(report.Roots))
	CollectFilesPerInvocation.Observe(float64(len(report.Files)))

	for fileType, n := range report.FilesByType {
		CollectFilesFound.WithLabelValues(string(fileType)).Add(float64(n))
	}
	for reason, n := range report.SkippedByReason() {
		CollectPathsSkipped.WithLabelValues(string(reason)).Add(float64(n))
	}

	CollectDuplicates.Add(float64(report.Duplicates))
	CollectDirectoriesVisited.Add(float64(report.DirectoriesVisited))
	CollectFilesIgnored.Add(float64(report.FilesIgnored))
}
