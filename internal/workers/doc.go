/*
Package workers sizes and gates concurrent filesystem work for the collector.

# Sizing

Worker counts are derived from GOMAXPROCS, which Go 1.19+ sets from container
CPU limits, rather than runtime.NumCPU, which reports host CPUs:

	n := workers.ForIO(64)   // 2 per CPU, at most 64
	n := workers.Count(3, 0) // 3 per CPU, no cap

The COLLECT_WORKERS environment variable overrides the computed value (still
capped by the limit argument).

# Gating

A Limiter bounds how many goroutines sit in blocking system calls at once.
A traversal goroutine takes a slot only for the duration of a single stat,
readlink or readdir call and never while waiting on its own children, so a
recursive fan-out cannot exhaust the slots and deadlock:

	lim := workers.NewLimiter(workers.ForIO(64))
	lim.Acquire()
	entries, err := os.ReadDir(dir)
	lim.Release()

TryAcquire never blocks. The collector uses it to decide whether a directory
entry gets its own goroutine or is expanded inline by the caller:

	if spawn.TryAcquire() {
	    go func() { defer spawn.Release(); work() }()
	} else {
	    work()
	}

Cap and InUse are sampled by the metrics collector.

All functions and Limiter methods are safe for concurrent use.
*/
package workers
