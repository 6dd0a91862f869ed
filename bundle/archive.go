package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	iofs "io/fs"
	"strings"
	"unicode/utf8"
)

// archiveFS serves a packaged bundle from an entry index loaded eagerly at
// open time. Directory entries are skipped; directory presence is inferred
// from entry-name prefixes.
type archiveFS struct {
	base    string
	entries map[string][]byte
}

func openArchive(path string) (*archiveFS, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenArchive, err)
	}
	defer r.Close()

	entries := make(map[string][]byte, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrReadEntry, f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrReadEntry, f.Name, err)
		}
		entries[f.Name] = data
	}
	return &archiveFS{base: path, entries: entries}, nil
}

func (a *archiveFS) Exists(rel string) bool {
	if _, ok := a.entries[rel]; ok {
		return true
	}
	return a.hasPrefix(rel)
}

func (a *archiveFS) IsFile(rel string) bool {
	_, ok := a.entries[rel]
	return ok
}

func (a *archiveFS) IsDir(rel string) bool { return a.hasPrefix(rel) }

func (a *archiveFS) hasPrefix(rel string) bool {
	prefix := rel + "/"
	for name := range a.entries {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (a *archiveFS) Read(rel string) (string, error) {
	data, ok := a.entries[rel]
	if !ok {
		return "", fmt.Errorf("bundle: file not found: %s: %w", rel, iofs.ErrNotExist)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, rel)
	}
	return string(data), nil
}

func (a *archiveFS) ReadJSON(rel string) (any, error) { return readJSON(a, rel) }

func (a *archiveFS) ReadYAML(rel string) (any, error) { return readYAML(a, rel) }

func (a *archiveFS) Basename() string { return stem(a.base) }

func (a *archiveFS) Path() string { return a.base }

func (a *archiveFS) IsArchive() bool { return true }
