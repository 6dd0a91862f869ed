package specspec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kookyleo/SpecSpec/bundle"
)

// ValidateBundle classifies the path, opens the matching accessor, and runs
// the optional name and content checks. Each terminal failure records one
// issue and returns nil; the surrounding traversal keeps going either way.
// On success the accessor is returned so callers may chain further checks.
func ValidateBundle(path string, segs Path, issues *Issues, opt BundleOpt) bundle.FS {
	info, err := os.Stat(path)
	if err != nil {
		report(issues, segs, CodeBundleNotFound, map[string]string{"path": path})
		return nil
	}

	isDir := info.IsDir()
	isArchive := !isDir && bundle.IsArchivePath(path, opt.ArchiveExt)

	if isDir && !opt.AcceptDir {
		report(issues, segs, CodeBundleTypeMismatch, map[string]string{"kind": "Directory"})
		return nil
	}
	if isArchive && !opt.AcceptArchive {
		report(issues, segs, CodeBundleTypeMismatch, map[string]string{"kind": "Archive"})
		return nil
	}
	if !isDir && !isArchive {
		report(issues, segs, CodeBundleInvalid, map[string]string{"path": path})
		return nil
	}

	fsys, err := bundle.Open(path, bundle.OpenOpt{ArchiveExt: opt.ArchiveExt})
	if err != nil {
		report(issues, segs, CodeBundleOpenError, map[string]string{"err": err.Error()})
		return nil
	}

	if opt.NamePattern != "" {
		name := fsys.Basename()
		if re, err := compilePattern(opt.NamePattern); err != nil {
			report(issues, segs, CodePatternInvalid, map[string]string{"pattern": opt.NamePattern, "err": err.Error()})
		} else if !re.MatchString(name) {
			report(issues, segs, CodeBundleNameMismatch, map[string]string{"name": name})
		}
	}
	if opt.Content != nil {
		opt.Content(fsys, segs, issues)
	}
	return fsys
}

// ValidateJSONFile checks that rel exists as a file inside the bundle,
// parses it as JSON, and runs the optional content validator against the
// parsed value. Issues for this file land at the path extended by rel. The
// second return reports whether a parsed value is being handed back.
func ValidateJSONFile(fsys bundle.FS, rel string, path Path, issues *Issues, content Validator) (any, bool) {
	fp := path.Field(rel)
	if !fsys.Exists(rel) {
		report(issues, fp, CodeFileNotFound, map[string]string{"rel": rel})
		return nil, false
	}
	if !fsys.IsFile(rel) {
		report(issues, fp, CodeFileNotFile, map[string]string{"rel": rel})
		return nil, false
	}
	v, err := fsys.ReadJSON(rel)
	if err != nil {
		report(issues, fp, CodeJSONParseError, map[string]string{"err": err.Error()})
		return nil, false
	}
	if content != nil {
		content(v, fp, issues)
	}
	return v, true
}

// ValidateYAMLFile is ValidateJSONFile for YAML manifests.
func ValidateYAMLFile(fsys bundle.FS, rel string, path Path, issues *Issues, content Validator) (any, bool) {
	fp := path.Field(rel)
	if !fsys.Exists(rel) {
		report(issues, fp, CodeFileNotFound, map[string]string{"rel": rel})
		return nil, false
	}
	if !fsys.IsFile(rel) {
		report(issues, fp, CodeFileNotFile, map[string]string{"rel": rel})
		return nil, false
	}
	v, err := fsys.ReadYAML(rel)
	if err != nil {
		report(issues, fp, CodeYAMLParseError, map[string]string{"err": err.Error()})
		return nil, false
	}
	if content != nil {
		content(v, fp, issues)
	}
	return v, true
}

// ValidateFile checks that rel exists as a plain file and, when ext is
// non-empty, that the segment after the last dot matches it exactly
// (case-sensitive; the leading dot is optional in ext).
func ValidateFile(fsys bundle.FS, rel string, path Path, issues *Issues, ext string) bool {
	fp := path.Field(rel)
	if !fsys.Exists(rel) {
		report(issues, fp, CodeFileNotFound, map[string]string{"rel": rel})
		return false
	}
	if !fsys.IsFile(rel) {
		report(issues, fp, CodeFileNotFile, map[string]string{"rel": rel})
		return false
	}
	if ext != "" {
		want := strings.TrimPrefix(ext, ".")
		got := strings.TrimPrefix(filepath.Ext(rel), ".")
		if got != want {
			report(issues, fp, CodeFileWrongExt, map[string]string{"want": want, "got": got})
			return false
		}
	}
	return true
}

// ValidateDirectory checks that rel exists as a directory inside the bundle.
func ValidateDirectory(fsys bundle.FS, rel string, path Path, issues *Issues) bool {
	dp := path.Field(rel)
	if !fsys.Exists(rel) {
		report(issues, dp, CodeDirNotFound, map[string]string{"rel": rel})
		return false
	}
	if !fsys.IsDir(rel) {
		report(issues, dp, CodeDirNotDir, map[string]string{"rel": rel})
		return false
	}
	return true
}
