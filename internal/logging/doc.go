// Package logging provides the leveled logging interface for the media
// collector.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information (per-path skips, retries)
//   - INFO: General operational messages (one summary line per invocation)
//   - WARN: Warning conditions (empty aggregate results, degraded config)
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// Output goes through a zerolog console writer on stderr. Printf-style helpers
// cover most call sites; Component returns a structured zerolog.Logger tagged
// with a component name for code that wants typed fields.
//
// The log level is configured via the DEBUG or LOG_LEVEL environment variables
// and can be overridden at runtime with SetLevel.
package logging
