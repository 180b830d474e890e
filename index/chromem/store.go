package chromem

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/philippgille/chromem-go"

	"github.com/poiesic/laureate/ai"
	"github.com/poiesic/laureate/index"
)

// DefaultCollection is the collection name used for publication chunks.
const DefaultCollection = "publications"

// Store implements index.Index on top of an embedded chromem-go database.
type Store struct {
	db         *chromem.DB
	collection *chromem.Collection
	embed      chromem.EmbeddingFunc
	name       string
	addWorkers int
	logger     *slog.Logger
}

var _ index.Index = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithCollection overrides the collection name.
// Default is DefaultCollection.
func WithCollection(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewIndex opens (or creates) an embedding index backed by chromem-go.
// An empty path keeps the index in memory, which is what the tests use.
//
// Returns index.Index to enforce abstraction.
func NewIndex(path string, embedder ai.Embedder, opts ...Option) (index.Index, error) {
	if embedder == nil {
		return nil, index.ErrEmbedderRequired
	}

	s := &Store{
		embed:      embeddingFunc(embedder),
		name:       DefaultCollection,
		addWorkers: runtime.NumCPU(),
		logger:     slog.Default().With("component", "chromem-index"),
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if path == "" {
		s.db = chromem.NewDB()
	} else {
		s.db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("opening vector database: %w", err)
		}
	}

	s.collection, err = s.db.GetOrCreateCollection(s.name, nil, s.embed)
	if err != nil {
		return nil, fmt.Errorf("opening collection %q: %w", s.name, err)
	}

	return s, nil
}

// embeddingFunc adapts ai.Embedder to the chromem embedding callback.
func embeddingFunc(embedder ai.Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedText(ctx, text)
	}
}

// Add indexes a batch of documents.
func (s *Store) Add(ctx context.Context, docs []index.Document) error {
	if len(docs) == 0 {
		return nil
	}

	batch := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		batch[i] = chromem.Document{
			ID:       doc.ID,
			Content:  doc.Text,
			Metadata: doc.Metadata,
		}
	}

	s.logger.Debug("adding documents to index", "count", len(batch))
	return s.collection.AddDocuments(ctx, batch, s.addWorkers)
}

// Query returns up to k documents ranked by descending similarity.
// k is clamped to the collection size; an empty collection yields no
// results rather than an error.
func (s *Store) Query(ctx context.Context, text string, k int) ([]index.Result, error) {
	count := s.collection.Count()
	if count == 0 || k <= 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	matches, err := s.collection.Query(ctx, text, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying collection %q: %w", s.name, err)
	}

	results := make([]index.Result, len(matches))
	for i, match := range matches {
		results[i] = index.Result{
			Document: index.Document{
				ID:       match.ID,
				Text:     match.Content,
				Metadata: match.Metadata,
			},
			Similarity: match.Similarity,
		}
	}
	return results, nil
}

// Wipe drops the collection and recreates it empty.
func (s *Store) Wipe(ctx context.Context) error {
	if err := s.db.DeleteCollection(s.name); err != nil {
		return fmt.Errorf("deleting collection %q: %w", s.name, err)
	}

	collection, err := s.db.GetOrCreateCollection(s.name, nil, s.embed)
	if err != nil {
		return fmt.Errorf("recreating collection %q: %w", s.name, err)
	}
	s.collection = collection
	s.logger.Info("index wiped", "collection", s.name)
	return nil
}

// Count returns the number of indexed documents.
func (s *Store) Count() int {
	return s.collection.Count()
}

// Close releases the store. chromem persists synchronously, so there is
// nothing to flush.
func (s *Store) Close() error {
	return nil
}
