package specspec

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and stable machine handling)
const (
	CodeTypeMismatch       = "type.mismatch"
	CodeStrTooShort        = "str.too_short"
	CodeStrTooLong         = "str.too_long"
	CodeStrPatternMismatch = "str.pattern_mismatch"
	CodeNumNotInteger      = "num.not_integer"
	CodeNumTooSmall        = "num.too_small"
	CodeNumTooLarge        = "num.too_large"
	CodeLiteralMismatch    = "literal.mismatch"
	CodePatternMismatch    = "pattern.mismatch"
	CodePatternInvalid     = "pattern.invalid"
	CodeFieldMissing       = "field.missing"
	CodeListTooShort       = "list.too_short"
	CodeListTooLong        = "list.too_long"
	CodeOneOfNoMatch       = "oneof.no_match"
	// Bundle and file-system checks
	CodeBundleNotFound     = "bundle.not_found"
	CodeBundleTypeMismatch = "bundle.type_mismatch"
	CodeBundleInvalid      = "bundle.invalid"
	CodeBundleOpenError    = "bundle.open_error"
	CodeBundleNameMismatch = "bundle.name_mismatch"
	CodeFileNotFound       = "file.not_found"
	CodeFileNotFile        = "file.not_file"
	CodeFileWrongExt       = "file.wrong_ext"
	CodeJSONParseError     = "json.parse_error"
	CodeYAMLParseError     = "yaml.parse_error"
	CodeDirNotFound        = "dir.not_found"
	CodeDirNotDir          = "dir.not_dir"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string `json:"path"` // Dotted breadcrumb (for example: items.[2].name).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message"`
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. str.too_short at items.[2].name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AddIssue appends one issue with the rendered path. All validators route
// their appends through here so path rendering stays uniform.
func AddIssue(issues *Issues, path Path, code, message string) {
	*issues = AppendIssues(*issues, Issue{Path: path.String(), Code: code, Message: message})
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
