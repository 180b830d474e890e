package award

import (
	"log/slog"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/poiesic/laureate/core"
)

// DefaultThreshold is the fuzzy acceptance threshold on the 0-100 ratio
// scale. A candidate is accepted only when its best ratio is strictly
// greater than the threshold.
const DefaultThreshold = 70.0

// RatioFunc scores the similarity of two strings on a 0-100 scale.
type RatioFunc func(a, b string) float64

// LevenshteinRatio is the default RatioFunc. It converts a Wagner-Fischer
// edit distance with substitution cost 2 into the normalized 0-100 ratio
// used by common fuzzy-matching toolkits, so thresholds transfer directly.
func LevenshteinRatio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return float64(total-dist) / float64(total) * 100
}

// Matcher filters retrieved chunks against a target award using two tiers:
// an exact case-insensitive substring test against the chunk's award
// metadata and text, and a fuzzy ratio test against each individual award
// name, tried only when the exact tier fails.
type Matcher struct {
	threshold float64
	ratio     RatioFunc
	logger    *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithThreshold sets the fuzzy acceptance threshold.
// Default is DefaultThreshold.
func WithThreshold(threshold float64) MatcherOption {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithRatioFunc replaces the similarity-ratio implementation. Any ratio on
// a consistent 0-100 scale preserves the threshold contract.
func WithRatioFunc(ratio RatioFunc) MatcherOption {
	return func(m *Matcher) {
		if ratio != nil {
			m.ratio = ratio
		}
	}
}

// WithMatcherLogger sets a custom logger.
// Default is slog.Default().
func WithMatcherLogger(logger *slog.Logger) MatcherOption {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMatcher creates a Matcher with the default threshold and ratio.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		threshold: DefaultThreshold,
		ratio:     LevenshteinRatio,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Accepts reports whether a chunk with the given award metadata and text
// matches the normalized target award.
func (m *Matcher) Accepts(awardsMeta, text, target string) bool {
	if target == "" {
		return true
	}

	awardsLower := strings.ToLower(awardsMeta)

	// Exact tier short-circuits the fuzzy tier.
	if strings.Contains(awardsLower, target) || strings.Contains(strings.ToLower(text), target) {
		return true
	}

	for name := range strings.SplitSeq(awardsLower, "|") {
		name = strings.TrimSpace(name)
		if name == "" || name == core.NoAwards {
			continue
		}
		if ratio := m.ratio(target, name); ratio > m.threshold {
			m.logger.Debug("fuzzy award match", "target", target, "name", name, "ratio", ratio)
			return true
		}
	}

	return false
}

// Filter returns the hits whose chunks match the normalized target award,
// preserving input order. Hits failing both tiers are dropped.
func (m *Matcher) Filter(hits []*core.Hit, target string) []*core.Hit {
	filtered := make([]*core.Hit, 0, len(hits))
	for _, hit := range hits {
		if m.Accepts(hit.Chunk.Awards, hit.Chunk.Text, target) {
			filtered = append(filtered, hit)
		}
	}
	return filtered
}
