//go:build windows

package pathnorm

func trimExtendedPrefix(p string) string {
	return stripExtendedPrefix(p)
}
