package specspec

import (
	"strconv"
	"strings"
)

// Path is the breadcrumb from the document root to the value under check.
// Field and Index return extended copies, so sibling branches never share a
// backing array.
type Path []string

// Field returns the path extended by an object field name.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), name)
}

// Index returns the path extended by a bracketed list index, e.g. "[2]".
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), "["+strconv.Itoa(i)+"]")
}

// String renders the breadcrumb: "(root)" when empty, otherwise the segments
// joined with ".".
func (p Path) String() string {
	if len(p) == 0 {
		return "(root)"
	}
	return strings.Join(p, ".")
}
