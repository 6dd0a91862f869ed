package specspec

import "github.com/kookyleo/SpecSpec/bundle"

// Validator checks a value at a path and appends violations to issues.
// Validators are first-class: structural combinators accept them as
// configuration, which is how a generator composes primitives into
// whole-document checks.
type Validator func(v any, path Path, issues *Issues)

// PathValidator checks a file-system path naming a bundle root.
type PathValidator func(path string, segs Path, issues *Issues)

// BundleValidator checks the content of an opened bundle.
type BundleValidator func(fs bundle.FS, segs Path, issues *Issues)

// Result is the outcome of a top-level validation run. OK is true exactly
// when Issues is empty.
type Result struct {
	OK     bool   `json:"ok"`
	Issues Issues `json:"issues"`
}

// Validate runs fn against v with an empty path and packages the outcome.
// The issue list is always non-nil, so an empty run marshals as "issues":[].
func Validate(v any, fn Validator) Result {
	issues := Issues{}
	fn(v, nil, &issues)
	return Result{OK: len(issues) == 0, Issues: issues}
}

// ValidatePath runs a path-driven validator against a bundle path. Any
// accessor fn opens along the way is discarded; only the recorded issues
// matter here.
func ValidatePath(path string, fn PathValidator) Result {
	issues := Issues{}
	fn(path, nil, &issues)
	return Result{OK: len(issues) == 0, Issues: issues}
}

// Matches reports whether v passes fn, without touching any caller-visible
// issue list.
func Matches(v any, fn Validator) bool {
	issues := Issues{}
	fn(v, nil, &issues)
	return len(issues) == 0
}
