package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/laureate/award"
	"github.com/poiesic/laureate/chunker"
	"github.com/poiesic/laureate/core"
	"github.com/poiesic/laureate/index"
	"github.com/poiesic/laureate/storage"
)

// DefaultBatchSize is the number of chunk documents submitted to the
// index per call.
const DefaultBatchSize = 1000

// Pipeline orchestrates corpus ingestion. It rebuilds the embedding index
// from a set of publications: awards are extracted, composed text is
// chunked, and chunk documents are indexed in bounded batches. Coerced
// publications are persisted to the publication store so later operations
// do not need the source file.
type Pipeline struct {
	idx        index.Index
	repository storage.PublicationRepository
	splitter   *chunker.Chunker
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many chunk documents are submitted to the index
// per batch. Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		p.batchSize = size
		return nil
	}
}

// WithChunker sets a custom text splitter.
// Default uses chunker.DefaultSize and chunker.DefaultOverlap.
func WithChunker(splitter *chunker.Chunker) Option {
	return func(p *Pipeline) error {
		if splitter == nil {
			return ErrChunkerRequired
		}
		p.splitter = splitter
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	idx index.Index,
	repository storage.PublicationRepository,
	opts ...Option,
) (*Pipeline, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	splitter, err := chunker.New(chunker.DefaultSize, chunker.DefaultOverlap)
	if err != nil {
		pool.Release()
		return nil, err
	}

	p := &Pipeline{
		idx:        idx,
		repository: repository,
		splitter:   splitter,
		pool:       pool,
		batchSize:  DefaultBatchSize,
		logger:     slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Stats summarizes one ingestion run.
type Stats struct {
	Publications int // publications processed
	Awarded      int // publications with at least one recognized award
	Chunks       int // chunk documents indexed
}

// Ingest rebuilds the index from the given publications.
//
// The index is wiped first so a re-ingest never mixes corpus versions. Award
// extraction, text composition and chunking fan out across the worker pool;
// chunk documents are then submitted in batches. A failed batch aborts the
// run and wipes the partial index rather than leaving it half-built.
func (p *Pipeline) Ingest(ctx context.Context, publications []*core.Publication) (*Stats, error) {
	if err := p.idx.Wipe(ctx); err != nil {
		return nil, core.NewPipelineError(core.KindIndexWrite, "wipe index", err)
	}
	if err := p.repository.DeleteAllPublications(ctx); err != nil {
		return nil, err
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		documents []index.Document
		awarded   int
	)

	for _, publication := range publications {
		pub := publication
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			pub.Awards = award.Extract(pub.Description, pub.RawAwards)
			docs := p.chunkPublication(pub)

			mu.Lock()
			documents = append(documents, docs...)
			if len(pub.Awards) > 0 {
				awarded++
			}
			mu.Unlock()
		})
		if err != nil {
			// Submit fails only when the pool is released; run inline.
			wg.Done()
			pub.Awards = award.Extract(pub.Description, pub.RawAwards)
			docs := p.chunkPublication(pub)

			mu.Lock()
			documents = append(documents, docs...)
			if len(pub.Awards) > 0 {
				awarded++
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if err := p.repository.AddPublications(ctx, publications...); err != nil {
		return nil, err
	}

	for start := 0; start < len(documents); start += p.batchSize {
		end := min(start+p.batchSize, len(documents))

		if err := p.idx.Add(ctx, documents[start:end]); err != nil {
			p.logger.Error("batch insert failed, wiping partial index",
				"batch_start", start, "err", err)
			if wipeErr := p.idx.Wipe(ctx); wipeErr != nil {
				p.logger.Error("wipe after failed batch also failed", "err", wipeErr)
			}
			return nil, core.NewPipelineError(core.KindIndexWrite, "index batch", err)
		}

		p.logger.Debug("indexed batch", "from", start, "to", end)
	}

	p.logger.Info("ingestion complete",
		"publications", len(publications),
		"awarded", awarded,
		"chunks", len(documents))

	return &Stats{
		Publications: len(publications),
		Awarded:      awarded,
		Chunks:       len(documents),
	}, nil
}

// chunkPublication composes a publication's text and splits it into chunk
// documents carrying the publication's metadata.
func (p *Pipeline) chunkPublication(pub *core.Publication) []index.Document {
	pieces := p.splitter.Split(ComposeText(pub))

	documents := make([]index.Document, 0, len(pieces))
	for i, piece := range pieces {
		chunk := &core.Chunk{
			PublicationID: pub.ID,
			Title:         pub.Title,
			Author:        pub.Author,
			License:       pub.License,
			Awards:        pub.AwardsLabel(),
			Text:          piece,
			Index:         i,
			Total:         len(pieces),
		}
		documents = append(documents, index.Document{
			ID:       string(chunk.DocumentID()),
			Text:     chunk.Text,
			Metadata: chunk.Metadata(),
		})
	}
	return documents
}

// ComposeText renders a publication into the labeled form that gets chunked
// and embedded. Keeping the award names inside the embedded text lets
// retrieval pick up award mentions without a separate field search.
func ComposeText(pub *core.Publication) string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nDescription: %s\nAwards: %s",
		pub.Title, pub.Author, pub.Description, pub.AwardsLabel())
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
