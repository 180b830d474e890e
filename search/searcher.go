package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/laureate/award"
	"github.com/poiesic/laureate/core"
	"github.com/poiesic/laureate/index"
)

const (
	// DefaultRetrievalLimit is how many chunks are pulled from the index
	// before filtering. Deliberately wide so award filtering has enough
	// candidates to survive dedup.
	DefaultRetrievalLimit = 100

	// DefaultResultCap bounds how many unique publications a search returns.
	DefaultResultCap = 5
)

// Searcher provides award-aware retrieval over an embedding index.
type Searcher struct {
	idx       index.Index
	matcher   *award.Matcher
	limit     int
	resultCap int
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithRetrievalLimit sets how many chunks are retrieved from the index
// before filtering. Default is DefaultRetrievalLimit.
func WithRetrievalLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit < 1 {
			return ErrInvalidLimit
		}
		s.limit = limit
		return nil
	}
}

// WithResultCap sets the maximum number of unique publications returned.
// Default is DefaultResultCap.
func WithResultCap(n int) Option {
	return func(s *Searcher) error {
		if n < 1 {
			return ErrInvalidLimit
		}
		s.resultCap = n
		return nil
	}
}

// WithMatcher sets a custom award matcher.
// Default uses award.DefaultThreshold with the Levenshtein ratio.
func WithMatcher(matcher *award.Matcher) Option {
	return func(s *Searcher) error {
		if matcher == nil {
			return ErrMatcherRequired
		}
		s.matcher = matcher
		return nil
	}
}

// NewSearcher creates a new searcher over the given index.
func NewSearcher(idx index.Index, opts ...Option) (*Searcher, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		idx:       idx,
		matcher:   award.NewMatcher(),
		limit:     DefaultRetrievalLimit,
		resultCap: DefaultResultCap,
		logger:    slog.Default().With("component", "search"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search retrieves up to the configured cap of unique publications
// relevant to the query. An empty index yields empty results, not an error.
func (s *Searcher) Search(ctx context.Context, query string) ([]*core.Hit, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor runs a search with observation hooks.
// The monitor receives callbacks at each stage of the search process.
//
// When the query names an award, the award phrase itself is what gets
// embedded, and the two-tier matcher filters retrieved chunks down to
// publications that actually hold that award. Otherwise the raw query is
// embedded and no filtering applies. Either way results are deduplicated
// by publication, keeping the best-ranked chunk per publication.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor Monitor) ([]*core.Hit, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	awardName, hasAward := award.ParseQuery(query)

	text := query
	if hasAward {
		text = awardName
		s.logger.Debug("award query detected", "award", awardName)
	}

	results, err := s.idx.Query(ctx, text, s.limit)
	if err != nil {
		s.logger.Error("error querying index", "query", query, "err", err)
		return nil, err
	}

	hits := make([]*core.Hit, 0, len(results))
	for _, result := range results {
		hits = append(hits, &core.Hit{
			Chunk: core.ChunkFromMetadata(result.Text, result.Metadata),
			Score: result.Similarity,
		})
	}
	monitor.AfterRetrieval(hits)

	if hasAward {
		hits = s.matcher.Filter(hits, awardName)
		monitor.AfterAwardFilter(awardName, hits)
	}

	hits = Dedupe(hits, s.resultCap)
	monitor.AfterDedup(hits)
	monitor.Finish(hits)

	return hits, nil
}

// Dedupe keeps the first hit for each publication, preserving rank order,
// and caps the result at limit unique publications.
func Dedupe(hits []*core.Hit, limit int) []*core.Hit {
	seen := make(map[core.ID]struct{}, len(hits))
	deduped := make([]*core.Hit, 0, min(limit, len(hits)))

	for _, hit := range hits {
		if _, dup := seen[hit.Chunk.PublicationID]; dup {
			continue
		}
		seen[hit.Chunk.PublicationID] = struct{}{}
		deduped = append(deduped, hit)
		if len(deduped) == limit {
			break
		}
	}
	return deduped
}
