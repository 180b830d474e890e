package index

import "context"

// Document is a (text, metadata) pair submitted for indexing.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]string
}

// Result is a retrieved document with its similarity score.
type Result struct {
	Document
	Similarity float32
}

// Index is the embedding index collaborator. Implementations must be safe
// for concurrent queries; writes happen only during ingest.
type Index interface {
	// Add indexes a batch of documents. The batch either succeeds or fails
	// as a whole.
	Add(ctx context.Context, docs []Document) error

	// Query returns up to k documents ranked by descending similarity to
	// the query text. An empty index yields an empty result, not an error.
	Query(ctx context.Context, text string, k int) ([]Result, error)

	// Wipe removes every indexed document. It is the only supported
	// mutation besides Add and always precedes a rebuild.
	Wipe(ctx context.Context) error

	// Count returns the number of indexed documents.
	Count() int

	// Close releases resources held by the index.
	Close() error
}
