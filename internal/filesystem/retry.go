package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"media-collector/internal/logging"
	"media-collector/internal/workers"
)

// Operation names reported to the Observer.
const (
	OpEvalSymlinks = "evalsymlinks"
	OpStat         = "stat"
	OpReadDir      = "readdir"
)

// Operations lists every operation name.
var Operations = []string{OpEvalSymlinks, OpStat, OpReadDir}

// FS is the set of filesystem operations the collector depends on.
type FS interface {
	Abs(path string) (string, error)
	EvalSymlinks(path string) (string, error)
	Stat(path string) (fs.FileInfo, error)
	// ReadDir returns the entries it could read even when err is non-nil.
	ReadDir(path string) ([]fs.DirEntry, error)
}

// RetryConfig configures retry behavior for filesystem operations
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryConfig returns sensible defaults for NFS retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

// isNFSStaleError checks if an error is an NFS stale file handle error
func isNFSStaleError(err error) bool {
	if err == nil {
		return false
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ESTALE
	}

	return false
}

// sleep is swapped out by tests.
var sleep = time.Sleep

// withRetry runs fn, retrying only on ESTALE. The value fn returned last is
// passed through together with its error.
func withRetry[T any](op, path string, config RetryConfig, fn func() (T, error)) (T, error) {
	start := time.Now()
	obs := observe()
	backoff := config.InitialBackoff

	var (
		val T
		err error
	)

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		val, err = fn()
		if err == nil {
			if attempt > 0 {
				logging.Info("NFS %s succeeded on retry %d for %s", op, attempt, path)
				if obs != nil {
					obs.ObserveRetrySuccess(op)
				}
			}
			break
		}

		if !isNFSStaleError(err) {
			break
		}

		if obs != nil {
			obs.ObserveStaleError(op)
		}

		if attempt == config.MaxRetries {
			logging.Warn("NFS %s failed after %d retries for %s: %v", op, config.MaxRetries, path, err)
			if obs != nil {
				obs.ObserveRetryFailure(op)
			}
			break
		}

		if obs != nil {
			obs.ObserveRetryAttempt(op)
		}
		logging.Debug("NFS %s stale file handle for %s, retrying in %v (attempt %d/%d)",
			op, path, backoff, attempt+1, config.MaxRetries)
		sleep(backoff)

		backoff *= 2
		if backoff > config.MaxBackoff {
			backoff = config.MaxBackoff
		}
	}

	if obs != nil {
		obs.ObserveOperation(op, time.Since(start).Seconds(), err)
	}
	return val, err
}

// StatWithRetry performs os.Stat with retry logic for NFS stale file handle errors
func StatWithRetry(path string, config RetryConfig) (fs.FileInfo, error) {
	return withRetry(OpStat, path, config, func() (fs.FileInfo, error) {
		return os.Stat(path)
	})
}

// EvalSymlinksWithRetry performs filepath.EvalSymlinks with retry logic for
// NFS stale file handle errors.
func EvalSymlinksWithRetry(path string, config RetryConfig) (string, error) {
	return withRetry(OpEvalSymlinks, path, config, func() (string, error) {
		return filepath.EvalSymlinks(path)
	})
}

// ReadDirWithRetry performs os.ReadDir with retry logic for NFS stale file
// handle errors. Entries read before a failure are returned with the error.
func ReadDirWithRetry(path string, config RetryConfig) ([]fs.DirEntry, error) {
	return withRetry(OpReadDir, path, config, func() ([]fs.DirEntry, error) {
		return os.ReadDir(path)
	})
}

// OS implements FS against the host filesystem.
type OS struct {
	retry   RetryConfig
	limiter *workers.Limiter
}

// NewOS returns an OS filesystem. A nil limiter leaves concurrency unbounded.
func NewOS(retry RetryConfig, limiter *workers.Limiter) *OS {
	return &OS{retry: retry, limiter: limiter}
}

// Abs returns an absolute form of path relative to the working directory.
func (o *OS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// EvalSymlinks resolves every symlink in path.
func (o *OS) EvalSymlinks(path string) (string, error) {
	o.limiter.Acquire()
	defer o.limiter.Release()
	return EvalSymlinksWithRetry(path, o.retry)
}

// Stat returns file info for path, following symlinks.
func (o *OS) Stat(path string) (fs.FileInfo, error) {
	o.limiter.Acquire()
	defer o.limiter.Release()
	return StatWithRetry(path, o.retry)
}

// ReadDir lists the immediate entries of path.
func (o *OS) ReadDir(path string) ([]fs.DirEntry, error) {
	o.limiter.Acquire()
	defer o.limiter.Release()
	return ReadDirWithRetry(path, o.retry)
}
