//go:build !windows

package pathnorm

// On Unix `\\?\` is an ordinary file name prefix and must be preserved.
func trimExtendedPrefix(p string) string {
	return p
}
