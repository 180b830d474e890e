package storage

import (
	"context"

	"github.com/poiesic/laureate/core"
)

// PublicationRepository provides operations for managing publication records.
// Implementations must be thread-safe and support concurrent access.
type PublicationRepository interface {
	// AddPublications adds one or more publications to storage.
	// Publications with an existing ID are overwritten.
	AddPublications(ctx context.Context, publications ...*core.Publication) error

	// GetPublication retrieves a single publication by ID.
	// Returns ErrNotFound if the publication doesn't exist.
	GetPublication(ctx context.Context, id core.ID) (*core.Publication, error)

	// ListPublications retrieves all stored publications, ordered by ID.
	ListPublications(ctx context.Context) ([]*core.Publication, error)

	// CountPublications returns the number of stored publications.
	CountPublications(ctx context.Context) (int, error)

	// DeleteAllPublications removes every stored publication.
	// Used when a corpus is re-ingested from scratch.
	DeleteAllPublications(ctx context.Context) error

	// Close closes the storage backend and releases resources.
	Close() error
}
