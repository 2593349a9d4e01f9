package pathnorm

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"media-collector/internal/filesystem"
)

func newOSNormalizer() *Normalizer {
	return New(filesystem.NewOS(filesystem.DefaultRetryConfig(), nil))
}

// realTempDir returns t.TempDir with its own symlinks resolved (macOS /var).
func realTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestStripExtendedPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "drive path", in: `\\?\C:\Music\a.mp3`, want: `C:\Music\a.mp3`},
		{name: "UNC path", in: `\\?\UNC\server\share\a.mp3`, want: `\\server\share\a.mp3`},
		{name: "no prefix", in: `C:\Music\a.mp3`, want: `C:\Music\a.mp3`},
		{name: "plain UNC", in: `\\server\share`, want: `\\server\share`},
		{name: "unix path", in: "/music/a.mp3", want: "/music/a.mp3"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripExtendedPrefix(tt.in); got != tt.want {
				t.Errorf("stripExtendedPrefix(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyAndDisplayAgree(t *testing.T) {
	prefixed := Identity(`\\?\C:\Music\a.mp3`)
	plain := Identity(`C:\Music\a.mp3`)

	if runtime.GOOS == "windows" {
		if prefixed.Key() != plain.Key() {
			t.Errorf("keys differ only by prefix: %q vs %q", prefixed.Key(), plain.Key())
		}
		if got := DisplayString(prefixed); got != `C:\Music\a.mp3` {
			t.Errorf("DisplayString() = %q, want prefix stripped", got)
		}
		return
	}

	if prefixed.Key() != string(prefixed) {
		t.Errorf("Key() altered a legal unix name: %q", prefixed.Key())
	}
	if got := DisplayString(Identity("/music/a.mp3")); got != "/music/a.mp3" {
		t.Errorf("DisplayString() = %q", got)
	}
}

func TestCanonicalizeResolvesSymlinks(t *testing.T) {
	dir := realTempDir(t)
	target := filepath.Join(dir, "album")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "shortcut")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	n := newOSNormalizer()

	viaLink, err := n.Canonicalize(link)
	if err != nil {
		t.Fatalf("Canonicalize(link) error = %v", err)
	}
	direct, err := n.Canonicalize(target)
	if err != nil {
		t.Fatalf("Canonicalize(target) error = %v", err)
	}
	dotted, err := n.Canonicalize(filepath.Join(target, "..", "album", "."))
	if err != nil {
		t.Fatalf("Canonicalize(dotted) error = %v", err)
	}

	if viaLink != direct || dotted != direct {
		t.Errorf("identities differ: link=%q direct=%q dotted=%q", viaLink, direct, dotted)
	}
	if viaLink.Key() != direct.Key() {
		t.Errorf("keys differ: %q vs %q", viaLink.Key(), direct.Key())
	}
	if string(direct) != target {
		t.Errorf("Canonicalize(target) = %q, want %q", direct, target)
	}
}

func TestCanonicalizeRelativePath(t *testing.T) {
	dir := realTempDir(t)
	if err := os.WriteFile(filepath.Join(dir, "track.mp3"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	id, err := newOSNormalizer().Canonicalize("track.mp3")
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	if want := filepath.Join(dir, "track.mp3"); string(id) != want {
		t.Errorf("Canonicalize() = %q, want %q", id, want)
	}
}

func TestCanonicalizeFailures(t *testing.T) {
	dir := realTempDir(t)
	dangling := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "gone"), dangling); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	n := newOSNormalizer()

	tests := []struct {
		name string
		path string
	}{
		{name: "missing path", path: filepath.Join(dir, "missing.mp3")},
		{name: "dangling link", path: dangling},
		{name: "missing parent", path: filepath.Join(dir, "no", "such", "dir")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if id, err := n.Canonicalize(tt.path); err == nil {
				t.Errorf("Canonicalize(%q) = %q, want error", tt.path, id)
			}
		})
	}

	if _, err := n.Canonicalize(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Canonicalize(\"\") error = %v, want ErrEmptyPath", err)
	}
}

type failingFS struct {
	absErr error
}

func (f failingFS) Abs(string) (string, error)            { return "", f.absErr }
func (f failingFS) EvalSymlinks(string) (string, error)   { return "", errors.New("unreachable") }
func (f failingFS) Stat(string) (fs.FileInfo, error)      { return nil, errors.New("unreachable") }
func (f failingFS) ReadDir(string) ([]fs.DirEntry, error) { return nil, errors.New("unreachable") }

func TestCanonicalizeWrapsAbsError(t *testing.T) {
	cause := errors.New("getwd failed")
	n := New(failingFS{absErr: cause})

	if _, err := n.Canonicalize("relative"); !errors.Is(err, cause) {
		t.Errorf("Canonicalize() error = %v, want wrapping %v", err, cause)
	}
}
