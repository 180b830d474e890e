package laureate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	aimock "github.com/poiesic/laureate/ai/mock"
	indexmock "github.com/poiesic/laureate/index/mock"
	"github.com/poiesic/laureate/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCorpus = `[
	{
		"id": "pub-glove",
		"title": "Gesture Glove",
		"username": "sam",
		"license": "mit",
		"publication_description": "A glove that translates sign language in real time.",
		"awards": ["Best Overall Project"]
	},
	{
		"id": "pub-plant",
		"title": "Plant Monitor",
		"username": "li",
		"license": "gpl3",
		"publication_description": "Tracks soil moisture and alerts when plants get thirsty.",
		"awards": []
	},
	{
		"id": "pub-synth",
		"title": "Pocket Synth",
		"username": "ana",
		"license": "mit",
		"publication_description": "A palm-sized synthesizer driven by capacitive pads.",
		"awards": []
	}
]`

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()

	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)

	cfg := &Config{DataDir: t.TempDir(), MaxResults: 5}
	assistant, err := NewAssistant(cfg,
		WithAIProvider(aimock.NewMockProvider()),
		WithIndex(indexmock.NewMockIndex()),
		WithRepository(repo),
	)
	require.NoError(t, err)
	t.Cleanup(func() { assistant.Close() })
	return assistant
}

func ingestTestCorpus(t *testing.T, assistant *Assistant) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(testCorpus), 0644))

	stats, err := assistant.IngestFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Publications)
}

func TestAssistant_IngestAndSearch(t *testing.T) {
	assistant := newTestAssistant(t)
	ingestTestCorpus(t, assistant)

	hits, err := assistant.Search(context.Background(), `projects with tag "best overall project"`)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Gesture Glove", hits[0].Chunk.Title)
}

func TestAssistant_SearchToleratesMisspelledAward(t *testing.T) {
	assistant := newTestAssistant(t)
	ingestTestCorpus(t, assistant)

	hits, err := assistant.Search(context.Background(), `tag "Best Overal Project"`)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Gesture Glove", hits[0].Chunk.Title)
}

func TestAssistant_AskCitesRetrievedProjects(t *testing.T) {
	assistant := newTestAssistant(t)
	ingestTestCorpus(t, assistant)

	// The mock generator echoes its prompt, so the answer exposes the
	// context the model would have been grounded on.
	answer, err := assistant.Ask(context.Background(), `tag "best overall project"`)
	require.NoError(t, err)
	assert.Contains(t, answer, "Gesture Glove")
	assert.Contains(t, answer, "pub-glove")
	assert.NotContains(t, answer, "Plant Monitor")
}

func TestAssistant_AskEmptyCorpus(t *testing.T) {
	assistant := newTestAssistant(t)

	answer, err := assistant.Ask(context.Background(), "any interesting robotics projects?")
	require.NoError(t, err)
	assert.Equal(t, NoMatchReply, answer)
}

func TestAssistant_AwardTally(t *testing.T) {
	assistant := newTestAssistant(t)
	ingestTestCorpus(t, assistant)

	entries, err := assistant.AwardTally(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "best overall project", entries[0].Award)
	assert.Equal(t, 1, entries[0].Count())
	assert.Equal(t, "pub-glove", string(entries[0].PublicationIDs[0]))
}

func TestAssistant_ReingestReplacesIndex(t *testing.T) {
	assistant := newTestAssistant(t)
	ingestTestCorpus(t, assistant)

	before := assistant.Index().Count()
	require.Greater(t, before, 0)

	ingestTestCorpus(t, assistant)
	assert.Equal(t, before, assistant.Index().Count(), "re-ingest must not accumulate documents")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, "nomic-embed-text", cfg.EmbeddingModel)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LAUREATE_MAX_RESULTS", "3")
	t.Setenv("LAUREATE_GENERATOR_MODEL", "llama-3.3-70b-versatile")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxResults)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.GeneratorModel)

	aiCfg := cfg.AIConfig()
	require.NoError(t, aiCfg.Validate())
	assert.Equal(t, "llama-3.3-70b-versatile", aiCfg.GeneratorModel)
}

func TestPromptTemplate_ContainsQuestionAndContext(t *testing.T) {
	assistant := newTestAssistant(t)
	ingestTestCorpus(t, assistant)

	answer, err := assistant.Ask(context.Background(), `tag "best overall project"`)
	require.NoError(t, err)

	assert.True(t, strings.Contains(answer, "Question: tag \"best overall project\""))
	assert.Contains(t, answer, "Awards: best overall project")
}
