// Package bundle provides a uniform read view over a validated unit of
// content: either a directory extracted on the file system or a zip-style
// archive loaded into memory. Callers depend only on the FS interface, never
// on which backend is active.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
)

// FS is the backend-agnostic accessor for a bundle. Implementations are
// read-only and immutable once opened.
type FS interface {
	// Exists reports whether rel names a file or directory in the bundle.
	Exists(rel string) bool
	// IsFile reports whether rel names a regular file.
	IsFile(rel string) bool
	// IsDir reports whether rel names a directory. Archives carry no
	// directory entries, so presence is inferred from entry-name prefixes.
	IsDir(rel string) bool
	// Read returns the UTF-8 text content of the file at rel.
	Read(rel string) (string, error)
	// ReadJSON parses the file at rel into a generic value tree.
	ReadJSON(rel string) (any, error)
	// ReadYAML parses the file at rel into a generic value tree with
	// string-keyed maps throughout.
	ReadYAML(rel string) (any, error)
	// Basename returns the final component of the bundle path without its
	// extension.
	Basename() string
	// Path returns the path the bundle was opened from.
	Path() string
	// IsArchive reports whether the archive backend is active.
	IsArchive() bool
}

// OpenOpt configures Open.
type OpenOpt struct {
	// ArchiveExt is an additional archive extension recognized alongside
	// ".zip" (leading dot optional).
	ArchiveExt string
}

// Named failure conditions, testable with errors.Is. Missing entries wrap
// io/fs.ErrNotExist.
var (
	ErrNotBundle   = errors.New("bundle: not a directory or archive")
	ErrOpenArchive = errors.New("bundle: cannot open archive")
	ErrReadEntry   = errors.New("bundle: cannot read archive entry")
	ErrInvalidUTF8 = errors.New("bundle: invalid UTF-8")
	ErrInvalidJSON = errors.New("bundle: invalid JSON")
	ErrInvalidYAML = errors.New("bundle: invalid YAML")
)

// Open classifies path and returns the matching backend: a directory yields
// the direct file-system view, a regular file with a recognized archive
// extension yields the in-memory archive view. Anything else fails with
// ErrNotBundle.
func Open(path string, opts ...OpenOpt) (FS, error) {
	var opt OpenOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return &dirFS{base: path}, nil
	}
	if err == nil && info.Mode().IsRegular() && IsArchivePath(path, opt.ArchiveExt) {
		return openArchive(path)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotBundle, path)
}

// IsArchivePath reports whether path carries a recognized archive suffix:
// ".zip", or extraExt when non-empty.
func IsArchivePath(path, extraExt string) bool {
	if strings.HasSuffix(path, ".zip") {
		return true
	}
	if extraExt == "" {
		return false
	}
	if !strings.HasPrefix(extraExt, ".") {
		extraExt = "." + extraExt
	}
	return strings.HasSuffix(path, extraExt)
}

// stem returns the final path component without its extension; dotfiles keep
// their full name.
func stem(path string) string {
	b := filepath.Base(path)
	ext := filepath.Ext(b)
	if ext == b {
		return b
	}
	return strings.TrimSuffix(b, ext)
}

func readJSON(fsys FS, rel string) (any, error) {
	text, err := fsys.Read(rel)
	if err != nil {
		return nil, err
	}
	var v any
	if err := j.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return v, nil
}
