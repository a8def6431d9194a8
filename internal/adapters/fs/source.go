// Package fs implements constraints document access on the local filesystem.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pinfile/internal/adapters/constraintsfile"
	"go.trai.ch/pinfile/internal/core/domain"
	"go.trai.ch/pinfile/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentSource = (*Source)(nil)

// Source implements ports.DocumentSource against the local filesystem.
type Source struct {
	logger ports.Logger
}

// NewSource creates a new Source with the given logger.
func NewSource(logger ports.Logger) *Source {
	return &Source{logger: logger}
}

// Load reads and parses the constraints document at the given path.
func (s *Source) Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileRead.Error()), "path", path)
	}

	doc, err := constraintsfile.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Store writes the canonical serialization of doc to path. When the file
// already holds the canonical bytes the write is skipped, so repeated
// formatting runs leave mtimes untouched.
func (s *Source) Store(path string, doc *domain.Document) (bool, error) {
	out := constraintsfile.Serialize(doc)

	existing, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err == nil && xxhash.Sum64(existing) == xxhash.Sum64(out) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileRead.Error()), "path", path)
	}

	if err := os.WriteFile(path, out, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileWrite.Error()), "path", path)
	}
	s.logger.Info(fmt.Sprintf("wrote %s", path))
	return true, nil
}

// Changed reports whether the canonical serialization of doc differs from
// the current content at path. A missing file always counts as changed.
func (s *Source) Changed(path string, doc *domain.Document) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileRead.Error()), "path", path)
	}

	out := constraintsfile.Serialize(doc)
	return xxhash.Sum64(existing) != xxhash.Sum64(out), nil
}
