/*

Package yamlpage stores flat pages as YAML files, one file per page.

A page is addressed by a url-like key ("/my/url") and holds an ordered
set of named text fields:

	// Note: in production code, check the error codes!
	p := yamlpage.New("./content")
	_ = p.Put("/my/url", yamlpage.NewRecord(
		"title", "foo",
		"body", "foo\nbar",
	))
	rec, ok, _ := p.Get("/my/url")
	title, _ := rec.Get("title")

The above writes ./content/my#url.yml:

	title: foo
	body: |-
	    foo
	    bar

Where and why should you use it?

Imagine a small site (a blog, a wiki, a help section) whose pages are
edited by hand or by scripts. A database is overkill: each page fits
naturally in a single human-readable and human-diffable file. This
package is the thin layer between url-like keys and those files.

How keys become file names is pluggable (see Backend): the default keeps
all pages flat in one directory, replacing '/' in the key with a
sentinel character; the alternative mirrors the key as a directory tree.

There is deliberately no locking, no caching and no atomic-rename
discipline: every Get re-reads the file, every Put overwrites it in
place. Concurrent writers to the same key race and the last write wins.

*/
package yamlpage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes pages under a root directory using a Backend
// to map keys to file paths. Create with New.
type Store struct {
	backend   Backend
	keyField  string
	pathField string
}

type config struct {
	backend   Backend
	ext       string
	sentinel  rune
	keyField  string
	pathField string
}

// Option configures a Store created with New.
type Option func(*config)

// WithBackend sets the key-to-path mapping strategy. The backend carries
// its own root directory, so the root passed to New is ignored.
func WithBackend(b Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithExtension sets the file extension used by the default backend,
// e.g. ".yaml". Default is ".yml". Has no effect when WithBackend is
// given; configure the backend itself instead.
func WithExtension(ext string) Option {
	return func(c *config) { c.ext = ext }
}

// WithSentinel sets the character the default backend substitutes for
// '/' in keys. Default is '#'. Has no effect when WithBackend is
// given; configure the backend itself instead.
func WithSentinel(r rune) Option {
	return func(c *config) { c.sentinel = r }
}

// WithMetadata makes Get merge provenance into the returned record:
// keyField gets the requested key, pathField the resolved file path.
// Either name can be "" to skip that field. A field parsed from the
// file is never overwritten by metadata of the same name, so pick names
// your pages don't use (e.g. "url" and "filename").
func WithMetadata(keyField, pathField string) Option {
	return func(c *config) {
		c.keyField = keyField
		c.pathField = pathField
	}
}

// New creates a Store keeping its pages under root.
// By default pages live flat in root as '#'-flattened .yml files;
// see Option for ways to change that.
func New(root string, opts ...Option) *Store {
	c := config{ext: DefaultExt, sentinel: DefaultSentinel}
	for _, o := range opts {
		o(&c)
	}
	b := c.backend
	if b == nil {
		b = &SingleFolderBackend{Root: root, Ext: c.ext, Sentinel: c.sentinel}
	}
	return &Store{backend: b, keyField: c.keyField, pathField: c.pathField}
}

// Put writes rec as the page for key, fully overwriting any previous
// content. Missing parent directories (including root) are created.
func (s *Store) Put(key string, rec *Record) error {
	d, err := marshalRecord(rec)
	if err != nil {
		return err
	}
	path := s.backend.Path(key)
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0644)
}

// Get reads the page stored under key. ok is false if there is no page
// file for key; a missing page is not an error. A file that exists but
// doesn't parse returns an error wrapping ErrMalformed.
func (s *Store) Get(key string) (rec *Record, ok bool, err error) {
	path := s.backend.Path(key)
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	rec, err = unmarshalRecord(d)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	s.addMetadata(rec, key, path)
	return rec, true, nil
}

// Exists reports whether a page file exists for key. Only a stat, the
// file is never read or parsed.
func (s *Store) Exists(key string) bool {
	return fileExists(s.backend.Path(key))
}

func (s *Store) addMetadata(rec *Record, key, path string) {
	set := func(name, value string) {
		if name == "" {
			return
		}
		// a field from the file wins over derived metadata
		if _, ok := rec.Get(name); ok {
			return
		}
		rec.Set(name, value)
	}
	set(s.keyField, key)
	set(s.pathField, path)
}
