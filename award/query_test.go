package award

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAward string
		wantFound bool
	}{
		{
			name:      "double-quoted tag",
			input:     `tag "Best Overall Project" list projects from this category`,
			wantAward: "best overall project",
			wantFound: true,
		},
		{
			name:      "single-quoted tag",
			input:     "show me tag 'most promising innovation'",
			wantAward: "most promising innovation",
			wantFound: true,
		},
		{
			name:      "tag keyword is case-insensitive",
			input:     `TAG "best use of llms"`,
			wantAward: "best use of llms",
			wantFound: true,
		},
		{
			name:      "misspelled tag still parsed",
			input:     `tag "Best Overal Project"`,
			wantAward: "best overal project",
			wantFound: true,
		},
		{
			name:      "most innovative shortcut",
			input:     "what are the most innovative submissions this year",
			wantAward: "most innovative project",
			wantFound: true,
		},
		{
			name:      "best overall shortcut",
			input:     "Which project was best overall?",
			wantAward: "best overall project",
			wantFound: true,
		},
		{
			name:      "plain query has no award",
			input:     "tell me about RAG pipelines",
			wantFound: false,
		},
		{
			name:      "empty input",
			input:     "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			award, found := ParseQuery(tt.input)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantAward, award)
		})
	}
}

func TestParseQuery_TagTakesPrecedenceOverShortcut(t *testing.T) {
	award, found := ParseQuery(`most innovative ideas, but tag "best overall project"`)
	assert.True(t, found)
	assert.Equal(t, "best overall project", award)
}
