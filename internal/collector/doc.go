// Package collector expands a set of root paths into every media file
// (mp3/mp4, case-insensitive) reachable from them.
//
// Each top-level call owns a fresh VisitedSet of canonical identities. Every
// branch of the traversal claims an identity with a single atomic
// insert-if-absent before expanding it, so a file reached through several
// roots or links is reported once and symlink cycles terminate.
//
// Directories fan out their entries and join before returning; roots are
// expanded the same way. An entry gets its own goroutine while one of the
// Collector's traversal slots (Config.Traversal) is free and is otherwise
// expanded inline by its parent, so a directory with 50k entries does not
// start 50k goroutines. Blocking filesystem calls are gated by a separate
// workers.Limiter inside the filesystem layer. Nothing waits for a slot, and
// no IO slot is held across a join.
//
// Per-path failures (missing paths, dangling links, unreadable directories)
// never abort a call: the affected path contributes nothing and is recorded in
// the Report. Only an empty aggregate is an error, ErrNoValidFiles.
//
// There is no cancellation. Once CollectAll starts, it runs to completion.
package collector
