/*
Package filesystem provides the filesystem operations used by the collector,
with automatic retry logic for NFS stale file handle errors.

# Purpose

The collector only ever needs four operations: make a path absolute, resolve
its symlinks, stat it, and list a directory. They are exposed through the FS
interface so tests can inject failures (permission errors, vanished entries)
without depending on chmod semantics, which do not apply when tests run as
root.

OS is the production implementation. Each blocking call:

  - takes a slot from an optional workers.Limiter for the duration of the call
  - retries ESTALE (errno 116 on Linux) with exponential backoff
  - reports duration, errors and retries to the package Observer

Every other error is returned immediately and is permanent from the caller's
point of view.

# Usage

	fsys := filesystem.NewOS(filesystem.DefaultRetryConfig(), workers.NewLimiter(workers.ForIO(64)))

	real, err := fsys.EvalSymlinks("/music/link")
	info, err := fsys.Stat(real)
	entries, err := fsys.ReadDir(real) // partial entries are returned alongside err

# Retry Behavior

Defaults:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Failed operations with retries add backoff delay (50ms → 100ms → 200ms by default).

# Metrics

SetObserver installs the metrics sink; internal/metrics provides the
Prometheus-backed implementation. With no observer installed, recording is
skipped, which keeps tests free of global state.
*/
package filesystem
