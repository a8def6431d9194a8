// Package constraintsfile implements parsing and serialization of
// line-oriented dependency constraints files.
//
// A constraints file is a flat list of version pins and bounds consumed by
// an external package resolver. Each non-blank, non-comment line has the shape
//
//	<package><operator><version> [; <environment marker>] [# <comment>]
//
// The package keeps the full document structure, comments and blank lines
// included, so a parse/serialize round trip preserves the file layout.
package constraintsfile

import (
	"regexp"
	"strings"

	"go.trai.ch/pinfile/internal/core/domain"
	"go.trai.ch/zerr"
)

// validPackageNameRegex matches package names per the host ecosystem's
// naming convention: leading and trailing alphanumerics, with '-', '_'
// and '.' allowed in between.
var validPackageNameRegex = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// Parse decomposes a constraints file into an ordered document of entries,
// comments and blank lines. The first malformed line aborts the parse;
// there is no partial application of a malformed file.
func Parse(data []byte) (*domain.Document, error) {
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		// A trailing newline terminates the last line, it does not open a blank one.
		lines = lines[:n-1]
	}

	doc := &domain.Document{Lines: make([]domain.Line, 0, len(lines))}
	for i, raw := range lines {
		line, err := parseLine(i+1, strings.TrimSuffix(raw, "\r"))
		if err != nil {
			return nil, err
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}

func parseLine(lineNo int, raw string) (domain.Line, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return &domain.Blank{Raw: raw, LineNo: lineNo}, nil
	}

	if rest, ok := strings.CutPrefix(trimmed, "#"); ok {
		return &domain.Comment{Text: strings.TrimSpace(rest), LineNo: lineNo}, nil
	}

	return parseEntry(lineNo, trimmed)
}

func parseEntry(lineNo int, text string) (*domain.Entry, error) {
	opIdx, op := findOperator(text)
	if opIdx < 0 {
		return nil, malformed(domain.ErrUnknownOperator, lineNo, text)
	}

	name := strings.TrimSpace(text[:opIdx])
	if name == "" {
		return nil, malformed(domain.ErrEmptyPackageName, lineNo, text)
	}
	if !validPackageNameRegex.MatchString(name) {
		return nil, zerr.With(malformed(domain.ErrInvalidPackageName, lineNo, text), "package", name)
	}

	version, marker, comment := splitRest(text[opIdx+len(op):])
	if version == "" {
		return nil, malformed(domain.ErrEmptyVersion, lineNo, text)
	}
	if strings.ContainsAny(version, " \t") {
		return nil, malformed(domain.ErrMalformedEntry, lineNo, text)
	}
	if marker == "" && hasMarkerSeparator(text[opIdx+len(op):]) {
		return nil, malformed(domain.ErrEmptyMarker, lineNo, text)
	}

	return &domain.Entry{
		Name:    name,
		Op:      op,
		Version: version,
		Marker:  marker,
		Comment: comment,
		LineNo:  lineNo,
	}, nil
}

// findOperator locates the first occurrence of a recognized operator token.
// At each position two-character tokens are tried before one-character ones
// so that ">=" is never read as ">".
func findOperator(text string) (int, domain.Operator) {
	for i := 0; i < len(text); i++ {
		for _, op := range domain.Operators {
			if strings.HasPrefix(text[i:], string(op)) {
				return i, op
			}
		}
	}
	return -1, ""
}

// splitRest decomposes the text after the operator into version, environment
// marker and inline comment. A ';' introduces the marker and a '#' the
// comment; both are only recognized outside quoted marker strings.
func splitRest(rest string) (version, marker, comment string) {
	head := rest
	if idx := indexUnquoted(rest, '#'); idx >= 0 {
		head = rest[:idx]
		comment = strings.TrimSpace(rest[idx+1:])
	}

	if idx := indexUnquoted(head, ';'); idx >= 0 {
		marker = strings.TrimSpace(head[idx+1:])
		head = head[:idx]
	}

	version = strings.TrimSpace(head)
	return version, marker, comment
}

// hasMarkerSeparator reports whether the text after the operator contains a
// marker separator outside of quotes and comments.
func hasMarkerSeparator(rest string) bool {
	head := rest
	if idx := indexUnquoted(rest, '#'); idx >= 0 {
		head = rest[:idx]
	}
	return indexUnquoted(head, ';') >= 0
}

// indexUnquoted returns the index of the first occurrence of c outside
// single- or double-quoted strings, or -1 if there is none.
func indexUnquoted(s string, c byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		switch {
		case quote != 0:
			if s[i] == quote {
				quote = 0
			}
		case s[i] == '\'' || s[i] == '"':
			quote = s[i]
		case s[i] == c:
			return i
		}
	}
	return -1
}

func malformed(sentinel error, lineNo int, text string) error {
	err := zerr.With(sentinel, "line", lineNo)
	return zerr.With(err, "text", text)
}
