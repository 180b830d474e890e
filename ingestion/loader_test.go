package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/laureate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadCorpus_MissingFile(t *testing.T) {
	_, err := LoadCorpus(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, core.KindCorpusMissing, core.KindOf(err))
}

func TestLoadCorpus_MalformedJSON(t *testing.T) {
	path := writeCorpus(t, `[{"id": "a",`)

	_, err := LoadCorpus(path)
	require.Error(t, err)
	assert.Equal(t, core.KindCorpusInvalid, core.KindOf(err))
}

func TestLoadCorpus_ValidRecords(t *testing.T) {
	path := writeCorpus(t, `[
		{
			"id": "pub-1",
			"title": "Gesture Glove",
			"username": "sam",
			"license": "mit",
			"publication_description": "A glove that translates gestures.",
			"awards": ["Best Overall Project"]
		},
		{
			"id": "pub-2",
			"title": "Plant Monitor",
			"username": "li",
			"license": "gpl3",
			"publication_description": "Tracks soil moisture.",
			"awards": []
		}
	]`)

	publications, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Len(t, publications, 2)

	first := publications[0]
	assert.Equal(t, core.ID("pub-1"), first.ID)
	assert.Equal(t, "Gesture Glove", first.Title)
	assert.Equal(t, "sam", first.Author)
	assert.Equal(t, "mit", first.License)
	assert.Equal(t, []string{"Best Overall Project"}, first.RawAwards)
	assert.Empty(t, first.Awards, "award extraction happens at ingest, not load")
}

func TestLoadCorpus_CoercesMissingFields(t *testing.T) {
	path := writeCorpus(t, `[
		{
			"id": "pub-1",
			"title": null,
			"username": "None",
			"license": "n/a",
			"publication_description": "Some description."
		}
	]`)

	publications, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Len(t, publications, 1)

	got := publications[0]
	assert.Equal(t, core.DefaultTitle, got.Title)
	assert.Equal(t, core.DefaultAuthor, got.Author)
	assert.Equal(t, core.DefaultLicense, got.License)
}

func TestLoadCorpus_DerivesMissingID(t *testing.T) {
	path := writeCorpus(t, `[
		{"title": "No ID Project", "publication_description": "text"},
		{"title": "No ID Project", "publication_description": "text"}
	]`)

	publications, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Len(t, publications, 2)

	assert.NotEmpty(t, publications[0].ID)
	assert.Equal(t, publications[0].ID, publications[1].ID,
		"identical content must derive identical IDs")
}

func TestLoadCorpus_EmptyArray(t *testing.T) {
	path := writeCorpus(t, `[]`)

	publications, err := LoadCorpus(path)
	require.NoError(t, err)
	assert.Empty(t, publications)
}
