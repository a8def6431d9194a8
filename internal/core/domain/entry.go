package domain

import (
	"regexp"
	"strings"
)

// Operator is a version comparison token bounding the acceptable range
// of a constraint.
type Operator string

const (
	// OpEqual pins a package to an exact version.
	OpEqual Operator = "=="

	// OpNotEqual excludes a single version.
	OpNotEqual Operator = "!="

	// OpGreaterEqual sets an inclusive lower bound.
	OpGreaterEqual Operator = ">="

	// OpLessEqual sets an inclusive upper bound.
	OpLessEqual Operator = "<="

	// OpCompatible allows compatible releases of the given version.
	OpCompatible Operator = "~="

	// OpGreater sets an exclusive lower bound.
	OpGreater Operator = ">"

	// OpLess sets an exclusive upper bound.
	OpLess Operator = "<"
)

// Operators lists the recognized tokens in scan order. Two-character
// tokens come first so that ">=" is never read as ">" followed by "=".
var Operators = []Operator{
	OpEqual,
	OpNotEqual,
	OpGreaterEqual,
	OpLessEqual,
	OpCompatible,
	OpGreater,
	OpLess,
}

// Valid reports whether op is one of the recognized operator tokens.
func (op Operator) Valid() bool {
	for _, known := range Operators {
		if op == known {
			return true
		}
	}
	return false
}

// Entry is a single version constraint: it restricts which versions of a
// package are acceptable, but never by itself requests installation.
type Entry struct {
	// Name is the package name exactly as written in the source.
	Name string

	// Op bounds the acceptable version range.
	Op Operator

	// Version is the version string the operator applies to.
	Version string

	// Marker is the optional environment marker expression. An empty
	// marker means the entry applies unconditionally. Markers are carried
	// as opaque text; evaluating them is the resolver's job.
	Marker string

	// Comment is the optional inline comment text, without the '#'.
	Comment string

	// LineNo is the 1-based line number in the source text, 0 for
	// entries constructed programmatically.
	LineNo int
}

// Pos returns the 1-based source line number.
func (e *Entry) Pos() int { return e.LineNo }

// Canonical returns the interned canonical form of the package name.
func (e *Entry) Canonical() InternedString {
	return CanonicalName(e.Name)
}

// nameSeparators matches runs of the characters that are equivalent in
// package names across the host ecosystem's naming convention.
var nameSeparators = regexp.MustCompile(`[-_.]+`)

// CanonicalName normalizes a package name for comparison: lowercase, with
// runs of '-', '_' and '.' collapsed to a single '-'. The result is
// interned because canonical names repeat heavily across documents.
func CanonicalName(name string) InternedString {
	return NewInternedString(nameSeparators.ReplaceAllString(strings.ToLower(name), "-"))
}
