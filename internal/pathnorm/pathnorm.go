package pathnorm

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"media-collector/internal/filesystem"
)

// ErrEmptyPath is returned for an empty input path.
var ErrEmptyPath = errors.New("empty path")

// Identity is a canonical filesystem location.
type Identity string

// Key returns the form used for deduplication.
func (id Identity) Key() string {
	return trimExtendedPrefix(string(id))
}

// String returns the identity as resolved by the filesystem.
func (id Identity) String() string {
	return string(id)
}

// DisplayString renders id for callers: extended-length prefix removed,
// platform-native separators.
func DisplayString(id Identity) string {
	return filepath.FromSlash(trimExtendedPrefix(string(id)))
}

// Normalizer resolves paths against a filesystem.
type Normalizer struct {
	fs filesystem.FS
}

// New returns a Normalizer backed by fsys.
func New(fsys filesystem.FS) *Normalizer {
	return &Normalizer{fs: fsys}
}

// Canonicalize resolves path to its absolute, symlink-free Identity. Relative
// paths are resolved against the working directory. It fails when the path
// or any link along it cannot be resolved.
func (n *Normalizer) Canonicalize(path string) (Identity, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	abs, err := n.fs.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path for %q: %w", path, err)
	}

	resolved, err := n.fs.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}

	return Identity(filepath.Clean(resolved)), nil
}

const (
	extendedPrefix    = `\\?\`
	extendedUNCPrefix = `\\?\UNC\`
)

// stripExtendedPrefix removes a Windows extended-length prefix. UNC forms
// keep their leading double backslash.
func stripExtendedPrefix(p string) string {
	if rest, ok := strings.CutPrefix(p, extendedUNCPrefix); ok {
		return `\\` + rest
	}
	if rest, ok := strings.CutPrefix(p, extendedPrefix); ok {
		return rest
	}
	return p
}
