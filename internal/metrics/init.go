package metrics

import (
	"media-collector/internal/collector"
	"media-collector/internal/filesystem"
	"media-collector/internal/mediatypes"
)

// Invocation outcome label values.
const (
	OutcomeSuccess      = "success"
	OutcomeNoValidFiles = "no_valid_files"
)

// Slot gauge label values.
const (
	SlotStateInUse    = "in_use"
	SlotStateCapacity = "capacity"
)

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	// --- Invocation outcomes ---
	for _, outcome := range []string{OutcomeSuccess, OutcomeNoValidFiles} {
		CollectInvocationsTotal.WithLabelValues(outcome)
	}

	// --- Files found by type ---
	for _, fileType := range []mediatypes.FileType{mediatypes.FileTypeAudio, mediatypes.FileTypeVideo} {
		CollectFilesFound.WithLabelValues(string(fileType))
	}

	// --- Collector slots ---
	for _, state := range []string{SlotStateInUse, SlotStateCapacity} {
		CollectIOSlots.WithLabelValues(state)
		CollectTraversalSlots.WithLabelValues(state)
	}

	// --- Skip reasons ---
	for _, reason := range collector.SkipReasons {
		CollectPathsSkipped.WithLabelValues(string(reason))
	}

	// --- Filesystem operation and retry metrics ---
	for _, op := range filesystem.Operations {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemRetrySuccess.WithLabelValues(op)
		FilesystemRetryFailures.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
	}
}
