package memory

import (
	"math"
	"os"
	"runtime/debug"
	"strconv"

	"media-collector/internal/logging"
)

// DefaultMemoryRatio is the share of the container limit given to the Go heap.
// The collector spawns no subprocesses and uses no cgo, so the remainder only
// covers goroutine stacks and runtime overhead.
const DefaultMemoryRatio = 0.9

const (
	sourceGOMEMLIMIT  = "GOMEMLIMIT"
	sourceMEMORYLIMIT = "MEMORY_LIMIT"
	sourceNone        = "none"
)

// ConfigResult holds the result of memory configuration
type ConfigResult struct {
	// Configured indicates whether a Go memory limit is in effect
	Configured bool

	// Source is "GOMEMLIMIT", "MEMORY_LIMIT", or "none"
	Source string

	// ContainerLimit is the container memory limit in bytes (0 if not set)
	ContainerLimit int64

	// GoMemLimit is the effective Go memory limit in bytes (0 if not set)
	GoMemLimit int64

	// Ratio is the memory ratio used (0 if not applicable)
	Ratio float64
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// ConfigureFromEnv applies Configure to the process environment. Call it
// before the server starts accepting collect requests.
func ConfigureFromEnv() ConfigResult {
	return Configure(os.LookupEnv)
}

// Configure sets the Go memory limit from a container memory limit.
//
// Variables:
//   - GOMEMLIMIT: read by the runtime at startup; takes precedence
//   - MEMORY_LIMIT: container memory limit in bytes (Kubernetes Downward API)
//   - MEMORY_RATIO: share of MEMORY_LIMIT for the Go heap (default 0.9)
func Configure(lookup LookupFunc) ConfigResult {
	if v, ok := lookup("GOMEMLIMIT"); ok && v != "" {
		result := ConfigResult{Source: sourceGOMEMLIMIT}
		if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 {
			result.Configured = true
			result.GoMemLimit = limit
		}
		logging.Info("GOMEMLIMIT set via environment: %s", v)
		return result
	}

	memLimitStr, ok := lookup("MEMORY_LIMIT")
	if !ok || memLimitStr == "" {
		logging.Debug("MEMORY_LIMIT not set, Go memory limit left unchanged")
		return ConfigResult{Source: sourceNone}
	}

	memLimit, err := strconv.ParseInt(memLimitStr, 10, 64)
	if err != nil || memLimit <= 0 {
		logging.Warn("Ignoring invalid MEMORY_LIMIT %q", memLimitStr)
		return ConfigResult{Source: sourceNone}
	}

	ratio := parseRatio(lookup)
	goMemLimit := int64(float64(memLimit) * ratio)
	debug.SetMemoryLimit(goMemLimit)

	logging.Info("Configured Go memory limit: %s (%.0f%% of %s container limit)",
		formatBytes(goMemLimit), ratio*100, formatBytes(memLimit))

	return ConfigResult{
		Configured:     true,
		Source:         sourceMEMORYLIMIT,
		ContainerLimit: memLimit,
		GoMemLimit:     goMemLimit,
		Ratio:          ratio,
	}
}

func parseRatio(lookup LookupFunc) float64 {
	s, ok := lookup("MEMORY_RATIO")
	if !ok || s == "" {
		return DefaultMemoryRatio
	}
	ratio, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logging.Warn("Failed to parse MEMORY_RATIO %q: %v, using default %.2f", s, err, DefaultMemoryRatio)
		return DefaultMemoryRatio
	}
	if ratio <= 0 || ratio > 1.0 {
		logging.Warn("MEMORY_RATIO %q out of range (0.0-1.0], using default %.2f", s, DefaultMemoryRatio)
		return DefaultMemoryRatio
	}
	return ratio
}

// formatBytes formats bytes into human-readable string
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return strconv.FormatFloat(float64(b)/float64(div), 'f', 1, 64) + " " + string("KMGTPE"[exp]) + "iB"
}
