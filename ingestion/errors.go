package ingestion

import "errors"

var (
	// ErrIndexRequired is returned when an embedding index is not provided.
	ErrIndexRequired = errors.New("embedding index required")

	// ErrRepositoryRequired is returned when a publication repository is not provided.
	ErrRepositoryRequired = errors.New("publication repository required")

	// ErrChunkerRequired is returned when a nil chunker is configured.
	ErrChunkerRequired = errors.New("chunker required")

	// ErrInvalidBatchSize is returned when a batch size below one is configured.
	ErrInvalidBatchSize = errors.New("batch size must be at least 1")
)
