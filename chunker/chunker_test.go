package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr error
	}{
		{name: "valid", size: 600, overlap: 100},
		{name: "zero overlap valid", size: 10, overlap: 0},
		{name: "zero size", size: 0, overlap: 0, wantErr: ErrInvalidSize},
		{name: "negative size", size: -5, overlap: 0, wantErr: ErrInvalidSize},
		{name: "negative overlap", size: 10, overlap: -1, wantErr: ErrInvalidOverlap},
		{name: "overlap equals size", size: 10, overlap: 10, wantErr: ErrInvalidOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.size, tt.overlap)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	c, err := New(100, 20)
	require.NoError(t, err)

	chunks := c.Split("a short document")
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short document", chunks[0])
}

func TestSplit_EmptyText(t *testing.T) {
	c, err := New(100, 20)
	require.NoError(t, err)

	assert.Nil(t, c.Split(""))
}

func TestSplit_ExactOverlap(t *testing.T) {
	c, err := New(20, 5)
	require.NoError(t, err)

	text := strings.Repeat("abcdefghij", 10) // 100 runes, no spaces
	chunks := c.Split(text)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1])
		cur := []rune(chunks[i])
		tail := string(prev[len(prev)-5:])
		head := string(cur[:5])
		assert.Equal(t, tail, head, "chunks %d and %d do not share the overlap", i-1, i)
	}
}

// reconstruct trims the leading overlap from every chunk after the first and
// concatenates the rest.
func reconstruct(chunks []string, overlap int) string {
	var b strings.Builder
	for i, chunk := range chunks {
		runes := []rune(chunk)
		if i == 0 {
			b.WriteString(chunk)
			continue
		}
		b.WriteString(string(runes[overlap:]))
	}
	return b.String()
}

func TestSplit_Reconstruction(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		text    string
	}{
		{
			name:    "prose with spaces",
			size:    40,
			overlap: 10,
			text:    "Title: Example Project\nAuthor: someone\nDescription: a retrieval pipeline that finds award-winning projects and their passages\nAwards: best overall project",
		},
		{
			name:    "no spaces at all",
			size:    16,
			overlap: 4,
			text:    strings.Repeat("x1y2z3", 30),
		},
		{
			name:    "unicode text",
			size:    12,
			overlap: 3,
			text:    strings.Repeat("日本語のテキスト ", 20),
		},
		{
			name:    "final chunk shorter",
			size:    50,
			overlap: 10,
			text:    strings.Repeat("word ", 23),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.size, tt.overlap)
			require.NoError(t, err)

			chunks := c.Split(tt.text)
			require.NotEmpty(t, chunks)

			assert.Equal(t, tt.text, reconstruct(chunks, tt.overlap))

			for i, chunk := range chunks {
				assert.LessOrEqual(t, len([]rune(chunk)), tt.size, "chunk %d exceeds size", i)
				assert.Greater(t, len([]rune(chunk)), tt.overlap, "chunk %d not longer than overlap", i)
			}
		})
	}
}

func TestSplit_PrefersWordBoundaries(t *testing.T) {
	c, err := New(30, 5)
	require.NoError(t, err)

	text := strings.Repeat("alpha beta gamma delta ", 8)
	chunks := c.Split(text)
	require.Greater(t, len(chunks), 1)

	// Every non-final chunk should end at a word boundary: either its last
	// rune is a space or the source had no space within the lookback window.
	for i := 0; i < len(chunks)-1; i++ {
		assert.True(t, strings.HasSuffix(chunks[i], " "), "chunk %d ends mid-word: %q", i, chunks[i])
	}
}

func TestSplit_MaxOverlapStillAdvances(t *testing.T) {
	// overlap = size-1 forces the window to advance one rune at a time; the
	// chunker must still terminate, reconstruct and keep every window
	// distinct.
	c, err := New(10, 9)
	require.NoError(t, err)

	text := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWX"
	chunks := c.Split(text)
	assert.Equal(t, text, reconstruct(chunks, 9))
	assert.Len(t, chunks, 41)
	assertUniqueChunks(t, chunks)
}

// assertUniqueChunks fails if any two chunks carry identical text.
func assertUniqueChunks(t *testing.T, chunks []string) {
	t.Helper()
	seen := make(map[string]int, len(chunks))
	for i, chunk := range chunks {
		if j, dup := seen[chunk]; dup {
			t.Errorf("chunks %d and %d have identical text: %q", j, i, chunk)
		}
		seen[chunk] = i
	}
}

func TestSplit_UniqueChunkTexts(t *testing.T) {
	// Overlapping windows over non-periodic text must never yield two
	// chunks with the same text.
	c, err := New(40, 10)
	require.NoError(t, err)

	text := "The gesture glove translates sign language in real time, " +
		"the plant monitor tracks soil moisture, and the pocket synth " +
		"turns capacitive pads into an instrument. Each project took a " +
		"different award home at the end of the season."
	chunks := c.Split(text)
	require.Greater(t, len(chunks), 2)
	assertUniqueChunks(t, chunks)
}
