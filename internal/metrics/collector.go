package metrics

import (
	"math"
	"runtime"
	"runtime/debug"
	"time"

	"media-collector/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds the current statistics
type Stats struct {
	ActiveInvocations   int
	TotalInvocations    int64
	IOSlotsInUse        int
	IOSlotsCapacity     int
	TraversalSlotsInUse int
	TraversalSlotsCap   int
}

// Collector periodically collects and updates gauge metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	GoMemAllocBytes.Set(float64(m.Alloc))
	GoMemSysBytes.Set(float64(m.Sys))
	GoGoroutines.Set(float64(runtime.NumGoroutine()))
	if limit := debug.SetMemoryLimit(-1); limit < math.MaxInt64 {
		GoMemLimitBytes.Set(float64(limit))
	} else {
		GoMemLimitBytes.Set(0)
	}

	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()
	CollectInvocationsActive.Set(float64(stats.ActiveInvocations))
	CollectIOSlots.WithLabelValues(SlotStateInUse).Set(float64(stats.IOSlotsInUse))
	CollectIOSlots.WithLabelValues(SlotStateCapacity).Set(float64(stats.IOSlotsCapacity))
	CollectTraversalSlots.WithLabelValues(SlotStateInUse).Set(float64(stats.TraversalSlotsInUse))
	CollectTraversalSlots.WithLabelValues(SlotStateCapacity).Set(float64(stats.TraversalSlotsCap))

	logging.Debug("Metrics collected: active invocations=%d, total invocations=%d, goroutines=%d",
		stats.ActiveInvocations, stats.TotalInvocations, runtime.NumGoroutine())
}
