package award

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_FromTags(t *testing.T) {
	tests := []struct {
		name      string
		rawAwards []string
		want      []string
	}{
		{
			name:      "canonical tag accepted",
			rawAwards: []string{"Best Overall Project"},
			want:      []string{"best overall project"},
		},
		{
			name:      "variant tag accepted by containment",
			rawAwards: []string{"Overall Project"},
			want:      []string{"overall project"},
		},
		{
			name:      "non-award tag rejected",
			rawAwards: []string{"community favorite"},
			want:      []string{},
		},
		{
			name:      "duplicates collapse",
			rawAwards: []string{"best overall project", "Best  Overall Project"},
			want:      []string{"best overall project"},
		},
		{
			name:      "empty list",
			rawAwards: nil,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract("", tt.rawAwards))
		})
	}
}

func TestExtract_FromDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name: "winner of cue",
			// The superlative cue also fires on "best ..." and captures the
			// tail, which still passes the vocabulary gate by containment.
			description: "Our team was the winner of best overall project.",
			want:        []string{"best overall project", "overall project"},
		},
		{
			name:        "award colon cue",
			description: "Award: most promising innovation\nMore text follows.",
			want:        []string{"most promising innovation", "promising innovation"},
		},
		{
			name:        "received cue",
			description: "We received best technical implementation, among others.",
			want:        []string{"best technical implementation", "technical implementation"},
		},
		{
			name:        "superlative cue accepted when in vocabulary",
			description: "This was judged the most innovative project; a great honor.",
			want:        []string{"innovative project"},
		},
		{
			name:        "generic superlative rejected by vocabulary gate",
			description: "It quickly became the most popular tool in the workshop.",
			want:        []string{},
		},
		{
			name:        "empty description",
			description: "",
			want:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.description, nil))
		})
	}
}

func TestExtract_UnionSortedDeduplicated(t *testing.T) {
	description := "Winner of best overall project. Also received best use of llms."
	rawAwards := []string{"Best Overall Project", "Most Innovative Project"}

	got := Extract(description, rawAwards)

	assert.Equal(t, []string{
		"best overall project",
		"best use of llms",
		"most innovative project",
		"overall project",
		"use of llms",
	}, got)
}

func TestInVocabulary(t *testing.T) {
	assert.True(t, InVocabulary("best overall project"))
	assert.True(t, InVocabulary("overall project"))
	assert.False(t, InVocabulary("popular tool"))
	assert.False(t, InVocabulary(""))
}
