// Package pathnorm turns user-supplied paths into canonical identities.
//
// An Identity is the absolute, symlink-free form of a path as reported by the
// filesystem. Two inputs that resolve to the same Identity denote the same node.
//
// Windows may report canonical paths with the extended-length prefix (\\?\ or
// \\?\UNC\). Key and DisplayString both drop it, so two identities that differ
// only by the prefix share one dedup key and the prefix never reaches callers.
// On other platforms the identity is used as-is.
package pathnorm
