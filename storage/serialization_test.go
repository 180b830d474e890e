package storage

import (
	"testing"

	"github.com/poiesic/laureate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPublication_RoundTrip(t *testing.T) {
	original := &core.Publication{
		ID:          "pub-42",
		Title:       "Sensor Fusion Rig",
		Author:      "casey",
		License:     "mit",
		Description: "An award-winning sensor fusion project.",
		RawAwards:   []string{"Best Overall Project"},
		Awards:      []string{"best overall project"},
	}

	restored, err := UnmarshalPublication(MarshalPublication(original))
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestMarshalPublication_EmptyAwards(t *testing.T) {
	original := &core.Publication{
		ID:          "pub-1",
		Title:       core.DefaultTitle,
		Author:      core.DefaultAuthor,
		License:     core.DefaultLicense,
		Description: "no awards here",
	}

	restored, err := UnmarshalPublication(MarshalPublication(original))
	require.NoError(t, err)
	assert.Empty(t, restored.Awards)
	assert.Empty(t, restored.RawAwards)
	assert.Equal(t, original, restored)
}

func TestUnmarshalPublication_TruncatedData(t *testing.T) {
	data := MarshalPublication(&core.Publication{
		ID:          "pub-9",
		Title:       "Truncation Target",
		Author:      "dev",
		License:     "mit",
		Description: "a record long enough that cutting it in half lands mid-field",
	})

	_, err := UnmarshalPublication(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
