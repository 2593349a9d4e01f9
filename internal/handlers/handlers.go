package handlers

import (
	"sync/atomic"
	"time"

	"media-collector/internal/collector"
	"media-collector/internal/metrics"
	"media-collector/internal/startup"
)

// PathCollector expands root paths into media files.
type PathCollector interface {
	CollectAllWithReport(paths []string) (*collector.Report, error)
	Load() collector.Load
}

type Handlers struct {
	collector PathCollector
	maxPaths  int
	startTime time.Time

	active       atomic.Int64
	total        atomic.Int64
	lastCollect  atomic.Int64 // unix nanoseconds
	shuttingDown atomic.Bool
}

func New(c PathCollector, config *startup.Config) *Handlers {
	maxPaths := config.MaxRequestPaths
	if maxPaths < 1 {
		maxPaths = startup.DefaultMaxRequestPaths
	}
	return &Handlers{
		collector: c,
		maxPaths:  maxPaths,
		startTime: time.Now(),
	}
}

// SetShuttingDown marks the service as draining so readiness probes fail.
func (h *Handlers) SetShuttingDown() {
	h.shuttingDown.Store(true)
}

// GetStats implements metrics.StatsProvider.
func (h *Handlers) GetStats() metrics.Stats {
	load := h.collector.Load()
	return metrics.Stats{
		ActiveInvocations:   int(h.active.Load()),
		TotalInvocations:    h.total.Load(),
		IOSlotsInUse:        load.IOInUse,
		IOSlotsCapacity:     load.IOCapacity,
		TraversalSlotsInUse: load.TraversalInUse,
		TraversalSlotsCap:   load.TraversalCap,
	}
}
