package yamlpage

import (
	"path/filepath"
	"strings"
)

// Defaults used by New for the single-folder backend, after the
// original implementation.
const (
	DefaultExt      = ".yml"
	DefaultSentinel = '#'
)

// Backend maps page keys to file paths. Implementations are pure: no
// I/O, same path for the same key every time.
type Backend interface {
	// Path returns the file path backing key.
	Path(key string) string

	// Key is the inverse of Path: it recovers the normalized key from
	// a path previously produced by Path. Returns false if path could
	// not have been produced by this backend.
	Key(path string) (string, bool)
}

// ensure both strategies implement the interface
var (
	_ Backend = (*SingleFolderBackend)(nil)
	_ Backend = (*MultiFolderBackend)(nil)
)

// splitKey normalizes a key into its non-empty path segments.
// "/my//url/" => ["my", "url"], "" => nil.
func splitKey(key string) []string {
	var segs []string
	for _, s := range strings.Split(key, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// SingleFolderBackend keeps every page directly under Root, replacing
// '/' in keys with Sentinel to form a flat file name:
//
//	"a/b/c" => "root/a#b#c.yml"
//
// A key that itself contains the sentinel character can collide with
// another key; segments are passed through literally, no escaping.
type SingleFolderBackend struct {
	Root     string
	Ext      string
	Sentinel rune
}

// NewSingleFolderBackend returns a backend with the default extension
// and sentinel.
func NewSingleFolderBackend(root string) *SingleFolderBackend {
	return &SingleFolderBackend{Root: root, Ext: DefaultExt, Sentinel: DefaultSentinel}
}

func (b *SingleFolderBackend) Path(key string) string {
	name := strings.Join(splitKey(key), string(b.Sentinel)) + b.Ext
	return filepath.Join(b.Root, name)
}

func (b *SingleFolderBackend) Key(path string) (string, bool) {
	rel, err := filepath.Rel(b.Root, path)
	if err != nil || strings.ContainsRune(rel, filepath.Separator) {
		return "", false
	}
	name, ok := strings.CutSuffix(rel, b.Ext)
	if !ok {
		return "", false
	}
	return strings.ReplaceAll(name, string(b.Sentinel), "/"), true
}

// MultiFolderBackend mirrors key segments as nested directories, one
// file per leaf:
//
//	"a/b/c" => "root/a/b/c.yml"
type MultiFolderBackend struct {
	Root string
	Ext  string
}

// NewMultiFolderBackend returns a backend with the default extension.
func NewMultiFolderBackend(root string) *MultiFolderBackend {
	return &MultiFolderBackend{Root: root, Ext: DefaultExt}
}

func (b *MultiFolderBackend) Path(key string) string {
	segs := splitKey(key)
	if len(segs) == 0 {
		return filepath.Join(b.Root, b.Ext)
	}
	segs[len(segs)-1] += b.Ext
	return filepath.Join(append([]string{b.Root}, segs...)...)
}

func (b *MultiFolderBackend) Key(path string) (string, bool) {
	rel, err := filepath.Rel(b.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	name, ok := strings.CutSuffix(filepath.ToSlash(rel), b.Ext)
	if !ok {
		return "", false
	}
	return name, true
}
