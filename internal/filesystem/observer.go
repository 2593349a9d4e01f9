package filesystem

import "sync/atomic"

// Observer records filesystem operation metrics. Implementations are provided
// by the metrics package to break the import cycle between filesystem and metrics.
type Observer interface {
	// ObserveOperation records duration and error status for a filesystem operation.
	// operation is one of "evalsymlinks", "stat", "readdir".
	ObserveOperation(operation string, durationSeconds float64, err error)

	ObserveRetryAttempt(operation string)
	ObserveRetrySuccess(operation string)
	ObserveRetryFailure(operation string)
	ObserveStaleError(operation string)
}

var defaultObserver atomic.Pointer[Observer]

// SetObserver sets the package-level metrics observer. Passing nil disables
// recording.
func SetObserver(o Observer) {
	if o == nil {
		defaultObserver.Store(nil)
		return
	}
	defaultObserver.Store(&o)
}

// observe returns the installed observer or nil.
func observe() Observer {
	if p := defaultObserver.Load(); p != nil {
		return *p
	}
	return nil
}
