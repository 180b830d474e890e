package chunker

import (
	"errors"
	"unicode"
)

// Defaults mirror the ingestion configuration the corpus was tuned with.
const (
	DefaultSize    = 600
	DefaultOverlap = 100
)

// maxBoundaryLookback bounds how far a chunk boundary may back up to avoid
// splitting mid-word.
const maxBoundaryLookback = 32

var (
	// ErrInvalidSize indicates a non-positive chunk size.
	ErrInvalidSize = errors.New("chunk size must be positive")

	// ErrInvalidOverlap indicates a negative overlap or one not below the size.
	ErrInvalidOverlap = errors.New("chunk overlap must be non-negative and less than the size")
)

// Chunker splits text into overlapping bounded-length passages.
//
// Consecutive chunks share exactly Overlap runes of trailing/leading
// context, so trimming the leading Overlap runes of every chunk after the
// first and concatenating reconstructs the source text exactly. Boundaries
// back up to the nearest space when one is close enough, preferring not to
// split mid-word.
//
// Every chunk covers a distinct span of the source, so chunk texts are
// pairwise distinct unless the source repeats at the window stride. On such
// periodic input the repeated windows are kept: exact reconstruction takes
// precedence over text uniqueness, and the chunk index still tells the
// copies apart.
type Chunker struct {
	size    int
	overlap int
}

// New creates a Chunker. size must be positive and overlap must satisfy
// 0 <= overlap < size.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if overlap < 0 || overlap >= size {
		return nil, ErrInvalidOverlap
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Size returns the configured maximum chunk length in runes.
func (c *Chunker) Size() int { return c.size }

// Overlap returns the configured overlap length in runes.
func (c *Chunker) Overlap() int { return c.overlap }

// Split returns the ordered chunk sequence for text. Empty input yields nil.
// The final chunk may be shorter than the configured size.
func (c *Chunker) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	if len(runes) <= c.size {
		return []string{text}
	}

	var chunks []string
	start := 0
	for {
		end := start + c.size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		cut := c.boundary(runes, start, end)
		chunks = append(chunks, string(runes[start:cut]))
		start = cut - c.overlap
	}

	return chunks
}

// boundary picks the split position for a chunk spanning [start, end).
// When the cut would land mid-word it backs up to just after the nearest
// space, as long as that stays within the lookback window and leaves the
// chunk longer than the overlap.
func (c *Chunker) boundary(runes []rune, start, end int) int {
	if !midWord(runes, end) {
		return end
	}

	floor := end - maxBoundaryLookback
	if min := start + c.overlap + 1; floor < min {
		floor = min
	}

	for i := end - 1; i >= floor; i-- {
		if unicode.IsSpace(runes[i]) {
			return i + 1
		}
	}

	return end
}

// midWord reports whether splitting before position cut separates two
// non-space runes.
func midWord(runes []rune, cut int) bool {
	return !unicode.IsSpace(runes[cut-1]) && !unicode.IsSpace(runes[cut])
}
