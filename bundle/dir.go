package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// dirFS serves a bundle extracted on the file system. Queries go straight to
// the OS; nothing is cached.
type dirFS struct {
	base string
}

func (d *dirFS) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(d.base, rel))
	return err == nil
}

func (d *dirFS) IsFile(rel string) bool {
	info, err := os.Stat(filepath.Join(d.base, rel))
	return err == nil && info.Mode().IsRegular()
}

func (d *dirFS) IsDir(rel string) bool {
	info, err := os.Stat(filepath.Join(d.base, rel))
	return err == nil && info.IsDir()
}

func (d *dirFS) Read(rel string) (string, error) {
	b, err := os.ReadFile(filepath.Join(d.base, rel))
	if err != nil {
		return "", fmt.Errorf("bundle: cannot read file %s: %w", rel, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, rel)
	}
	return string(b), nil
}

func (d *dirFS) ReadJSON(rel string) (any, error) { return readJSON(d, rel) }

func (d *dirFS) ReadYAML(rel string) (any, error) { return readYAML(d, rel) }

func (d *dirFS) Basename() string { return stem(d.base) }

func (d *dirFS) Path() string { return d.base }

func (d *dirFS) IsArchive() bool { return false }
