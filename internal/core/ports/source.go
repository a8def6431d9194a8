package ports

import "go.trai.ch/pinfile/internal/core/domain"

// DocumentSource defines the interface for loading and storing constraints documents.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type DocumentSource interface {
	// Load reads and parses the constraints document at the given path.
	Load(path string) (*domain.Document, error)

	// Store writes the canonical serialization of doc to the given path.
	// The write is skipped when the file already holds the canonical form;
	// the returned bool reports whether the file was rewritten.
	Store(path string, doc *domain.Document) (bool, error)

	// Changed reports whether the canonical serialization of doc differs
	// from the current content at path without writing anything.
	Changed(path string, doc *domain.Document) (bool, error)
}
