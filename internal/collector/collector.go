package collector

import (
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"media-collector/internal/filesystem"
	"media-collector/internal/logging"
	"media-collector/internal/mediatypes"
	"media-collector/internal/pathnorm"
	"media-collector/internal/workers"
)

// Config configures a Collector.
type Config struct {
	// IOWorkers bounds concurrent blocking filesystem calls (0 = auto based on CPU)
	IOWorkers int
	// Retry configures ESTALE retries for filesystem calls
	Retry filesystem.RetryConfig
	// Traversal bounds goroutines spawned for sibling entries (0 = 4 * IOWorkers).
	// Entries that find no free slot are expanded inline by their parent.
	Traversal int
}

// DefaultConfig returns defaults sized for I/O-bound work.
func DefaultConfig() Config {
	return Config{
		IOWorkers: workers.ForIO(64),
		Retry:     filesystem.DefaultRetryConfig(),
	}
}

// Observer receives one call per completed top-level invocation.
// Implementations are provided by the metrics package.
type Observer interface {
	ObserveInvocation(report *Report, err error)
}

// Option customizes a Collector.
type Option func(*Collector)

// WithFS replaces the filesystem. Config.IOWorkers and Config.Retry only
// apply to the default OS filesystem.
func WithFS(fsys filesystem.FS) Option {
	return func(c *Collector) {
		c.fs = fsys
	}
}

// WithObserver installs an invocation observer.
func WithObserver(o Observer) Option {
	return func(c *Collector) {
		c.observer = o
	}
}

// Collector finds media files under a set of roots. It holds no
// per-invocation state and is safe for concurrent use.
type Collector struct {
	config   Config
	fs       filesystem.FS
	norm     *pathnorm.Normalizer
	observer Observer

	ioSlots    *workers.Limiter
	spawnSlots *workers.Limiter
}

// Load is a point-in-time view of the slots a Collector holds.
type Load struct {
	IOInUse        int
	IOCapacity     int
	TraversalInUse int
	TraversalCap   int
}

// New creates a Collector.
func New(config Config, opts ...Option) *Collector {
	if config.IOWorkers <= 0 {
		config.IOWorkers = workers.ForIO(64)
	}
	if config.Traversal <= 0 {
		config.Traversal = 4 * config.IOWorkers
	}

	c := &Collector{
		config:     config,
		spawnSlots: workers.NewLimiter(config.Traversal),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fs == nil {
		c.ioSlots = workers.NewLimiter(config.IOWorkers)
		c.fs = filesystem.NewOS(config.Retry, c.ioSlots)
	}
	c.norm = pathnorm.New(c.fs)
	return c
}

// Load reports how many filesystem and traversal slots are currently held.
// The IO figures are zero when a custom filesystem was installed with WithFS.
func (c *Collector) Load() Load {
	return Load{
		IOInUse:        c.ioSlots.InUse(),
		IOCapacity:     c.ioSlots.Cap(),
		TraversalInUse: c.spawnSlots.InUse(),
		TraversalCap:   c.spawnSlots.Cap(),
	}
}

// invocation carries the shared state of one top-level call.
type invocation struct {
	id      string
	visited *VisitedSet
	log     zerolog.Logger

	mu      sync.Mutex
	skipped []SkippedPath

	duplicates atomic.Int64
	dirs       atomic.Int64
	ignored    atomic.Int64
}

func newInvocation(visited *VisitedSet) *invocation {
	id := uuid.NewString()
	return &invocation{
		id:      id,
		visited: visited,
		log:     logging.Component("collector").With().Str("invocation", id).Logger(),
	}
}

func (inv *invocation) skip(path string, reason SkipReason, err error) {
	entry := SkippedPath{Path: path, Reason: reason}
	if err != nil {
		entry.Error = err.Error()
	}

	inv.mu.Lock()
	inv.skipped = append(inv.skipped, entry)
	inv.mu.Unlock()

	inv.log.Debug().Str("path", path).Str("reason", string(reason)).Err(err).Msg("skipping path")
}

// Collect expands path into the matching files reachable from it, claiming
// identities in visited. Paths already claimed, unreachable paths and
// non-matching files yield nothing. The order of the result is unspecified.
func (c *Collector) Collect(path string, visited *VisitedSet) []string {
	return c.collect(newInvocation(visited), path)
}

// CollectAll expands every root with a fresh VisitedSet shared by all of
// them. It returns ErrNoValidFiles when nothing was found.
func (c *Collector) CollectAll(paths []string) ([]string, error) {
	report, err := c.CollectAllWithReport(paths)
	if err != nil {
		return nil, err
	}
	return report.Files, nil
}

// CollectAllWithReport behaves like CollectAll and also returns diagnostics.
// The report is non-nil even when err is ErrNoValidFiles.
func (c *Collector) CollectAllWithReport(paths []string) (*Report, error) {
	start := time.Now()
	inv := newInvocation(NewVisitedSet())

	inv.log.Debug().Int("roots", len(paths)).Msg("collect started")

	files := c.fanOut(len(paths), func(i int) []string {
		return c.collect(inv, paths[i])
	})

	sort.Slice(inv.skipped, func(i, j int) bool {
		if inv.skipped[i].Path != inv.skipped[j].Path {
			return inv.skipped[i].Path < inv.skipped[j].Path
		}
		return inv.skipped[i].Reason < inv.skipped[j].Reason
	})

	if files == nil {
		files = []string{}
	}

	duration := time.Since(start)
	report := &Report{
		InvocationID:       inv.id,
		Roots:              len(paths),
		Files:              files,
		FilesByType:        countByType(files),
		Skipped:            inv.skipped,
		Duplicates:         inv.duplicates.Load(),
		DirectoriesVisited: inv.dirs.Load(),
		FilesIgnored:       inv.ignored.Load(),
		IdentitiesClaimed:  inv.visited.Len(),
		Duration:           duration,
		DurationMs:         duration.Milliseconds(),
	}

	var err error
	if len(files) == 0 {
		err = ErrNoValidFiles
		logging.Warn("Collect %s found no media files in %d roots (skipped: %d)",
			inv.id, len(paths), len(report.Skipped))
	} else {
		logging.Info("Collect %s complete: %d files from %d roots in %v (dirs: %d, duplicates: %d, skipped: %d)",
			inv.id, len(files), len(paths), duration, report.DirectoriesVisited, report.Duplicates, len(report.Skipped))
	}

	if c.observer != nil {
		c.observer.ObserveInvocation(report, err)
	}
	return report, err
}

// collect canonicalizes path, claims it, and expands it.
func (c *Collector) collect(inv *invocation, path string) []string {
	id, err := c.norm.Canonicalize(path)
	if err != nil {
		inv.skip(path, ReasonCanonicalize, err)
		return nil
	}

	if !inv.visited.Claim(id) {
		inv.duplicates.Add(1)
		return nil
	}

	info, err := c.fs.Stat(id.String())
	if err != nil {
		inv.skip(pathnorm.DisplayString(id), ReasonStat, err)
		return nil
	}

	switch {
	case info.IsDir():
		inv.dirs.Add(1)
		return c.expand(inv, id)
	case info.Mode().IsRegular():
		// The resolved name decides, not the name of a link pointing at it.
		if mediatypes.IsTargetFile(id.String()) {
			return []string{pathnorm.DisplayString(id)}
		}
		inv.ignored.Add(1)
		return nil
	default:
		inv.skip(pathnorm.DisplayString(id), ReasonUnsupported, nil)
		return nil
	}
}

// expand collects every entry of dir concurrently. Entries listed before a
// read error are still expanded.
func (c *Collector) expand(inv *invocation, dir pathnorm.Identity) []string {
	entries, err := c.fs.ReadDir(dir.String())
	if err != nil {
		inv.skip(pathnorm.DisplayString(dir), ReasonReadDir, err)
	}

	return c.fanOut(len(entries), func(i int) []string {
		return c.collect(inv, filepath.Join(dir.String(), entries[i].Name()))
	})
}

// fanOut runs fn for 0..n-1 and concatenates the results once all of them
// have returned. Each call gets its own goroutine while traversal slots are
// free; otherwise it runs inline on the caller's goroutine, which never
// blocks on a slot.
func (c *Collector) fanOut(n int, fn func(i int) []string) []string {
	switch n {
	case 0:
		return nil
	case 1:
		return fn(0)
	}

	parts := make([][]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		if !c.spawnSlots.TryAcquire() {
			parts[i] = fn(i)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer c.spawnSlots.Release()
			parts[i] = fn(i)
		}()
	}
	wg.Wait()

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if total == 0 {
		return nil
	}

	out := make([]string, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
