package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedEntry is returned when a non-blank, non-comment line cannot
	// be decomposed into a package name, operator and version.
	ErrMalformedEntry = zerr.New("malformed constraint entry")

	// ErrUnknownOperator is returned when a line contains no recognized version operator.
	ErrUnknownOperator = zerr.New("no recognized version operator")

	// ErrEmptyPackageName is returned when the text before the operator is empty.
	ErrEmptyPackageName = zerr.New("empty package name")

	// ErrInvalidPackageName is returned when the package name contains characters
	// outside the host ecosystem's naming convention.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrEmptyVersion is returned when no version string follows the operator.
	ErrEmptyVersion = zerr.New("empty version")

	// ErrEmptyMarker is returned when a ';' introduces an environment marker but
	// no expression follows it.
	ErrEmptyMarker = zerr.New("empty environment marker")

	// ErrDuplicatePin is returned in strict mode when the same package is pinned
	// more than once under the same environment marker.
	ErrDuplicatePin = zerr.New("duplicate pin for package")

	// ErrFileRead is returned when a constraints file cannot be read.
	ErrFileRead = zerr.New("failed to read constraints file")

	// ErrFileWrite is returned when a constraints file cannot be written.
	ErrFileWrite = zerr.New("failed to write constraints file")

	// ErrNoFilesSpecified is returned when an operation is invoked without any files.
	ErrNoFilesSpecified = zerr.New("no files specified")

	// ErrCheckFailed is returned when one or more files fail a check run.
	// Individual failures are logged as they are found.
	ErrCheckFailed = zerr.New("check failed")

	// ErrInvalidOutputFormat is returned for an unknown list output format.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'text' or 'yaml'")
)
