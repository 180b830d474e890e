// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package laureate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/poiesic/laureate/ai"
	"github.com/poiesic/laureate/ai/openai"
	"github.com/poiesic/laureate/core"
	"github.com/poiesic/laureate/index"
	"github.com/poiesic/laureate/index/chromem"
	"github.com/poiesic/laureate/ingestion"
	"github.com/poiesic/laureate/search"
	"github.com/poiesic/laureate/storage"
	"github.com/poiesic/laureate/storage/badger"
)

// NoMatchReply is returned by Ask when retrieval surfaces nothing to cite.
// Generation is skipped entirely rather than handing the model an empty
// context to improvise over.
const NoMatchReply = "I don't have enough information from the publication corpus to list projects for this award."

const promptTemplate = `You are the Developer Inspiration Assistant, a tool that helps engineers discover award-winning projects.

Use ONLY the context below to answer. Never invent projects.

List up to %d projects that match the requested award or query.
Include: Title, ID, Awards, and a short inspiring snippet.

If no projects match:
"%s"

Context:
%s

Question: %s

Answer clearly and professionally:`

// Assistant ties the pipeline together: corpus ingestion, award-aware
// retrieval, and answer generation over a persistent index.
type Assistant struct {
	config     *Config
	provider   ai.AIProvider
	idx        index.Index
	repository storage.PublicationRepository
	searcher   *search.Searcher
	logger     *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig      *ai.Config
	provider      ai.AIProvider
	idx           index.Index
	repository    storage.PublicationRepository
	searchOptions []search.Option
}

// WithAIConfig overrides the AI service configuration derived from Config.
func WithAIConfig(cfg *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = cfg
	}
}

// WithAIProvider injects a pre-built AI provider, bypassing AI config.
func WithAIProvider(provider ai.AIProvider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// WithIndex injects a pre-built embedding index.
func WithIndex(idx index.Index) AssistantOption {
	return func(o *assistantOptions) {
		o.idx = idx
	}
}

// WithRepository injects a pre-built publication repository.
func WithRepository(repository storage.PublicationRepository) AssistantOption {
	return func(o *assistantOptions) {
		o.repository = repository
	}
}

// WithSearchOptions forwards options to the underlying searcher.
func WithSearchOptions(opts ...search.Option) AssistantOption {
	return func(o *assistantOptions) {
		o.searchOptions = append(o.searchOptions, opts...)
	}
}

// NewAssistant wires up an assistant from configuration. State is persisted
// under cfg.DataDir; injected collaborators (via options) take precedence
// over the defaults built from cfg.
func NewAssistant(cfg *Config, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		aiConfig := options.aiConfig
		if aiConfig == nil {
			aiConfig = cfg.AIConfig()
		}
		var err error
		provider, err = openai.NewProvider(aiConfig)
		if err != nil {
			return nil, err
		}
	}

	repository := options.repository
	if repository == nil {
		backend, err := badger.OpenBackend(filepath.Join(cfg.DataDir, "publications"), false)
		if err != nil {
			provider.Close()
			return nil, err
		}
		repository = badger.NewPublicationRepository(backend)
	}

	idx := options.idx
	if idx == nil {
		var err error
		idx, err = chromem.NewIndex(filepath.Join(cfg.DataDir, "index"), provider.Embedder())
		if err != nil {
			repository.Close()
			provider.Close()
			return nil, err
		}
	}

	searchOptions := append([]search.Option{
		search.WithResultCap(cfg.MaxResults),
	}, options.searchOptions...)

	searcher, err := search.NewSearcher(idx, searchOptions...)
	if err != nil {
		idx.Close()
		repository.Close()
		provider.Close()
		return nil, err
	}

	return &Assistant{
		config:     cfg,
		provider:   provider,
		idx:        idx,
		repository: repository,
		searcher:   searcher,
		logger:     slog.Default().With("component", "assistant"),
	}, nil
}

// IngestFile rebuilds the index and publication store from a corpus file.
func (a *Assistant) IngestFile(ctx context.Context, path string, opts ...ingestion.Option) (*ingestion.Stats, error) {
	publications, err := ingestion.LoadCorpus(path)
	if err != nil {
		return nil, err
	}

	pipeline, err := ingestion.NewPipeline(a.idx, a.repository, opts...)
	if err != nil {
		return nil, err
	}
	defer pipeline.Release()

	return pipeline.Ingest(ctx, publications)
}

// Search retrieves the publications most relevant to the query, applying
// award filtering when the query names one.
func (a *Assistant) Search(ctx context.Context, query string) ([]*core.Hit, error) {
	return a.searcher.Search(ctx, query)
}

// SearchWithMonitor is Search with observation hooks.
func (a *Assistant) SearchWithMonitor(ctx context.Context, query string, monitor search.Monitor) ([]*core.Hit, error) {
	return a.searcher.SearchWithMonitor(ctx, query, monitor)
}

// Ask answers a question grounded in retrieved publications. When nothing
// relevant is retrieved it returns NoMatchReply without calling the model.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	hits, err := a.Search(ctx, question)
	if err != nil {
		return "", err
	}

	if len(hits) == 0 {
		a.logger.Debug("no hits for question, skipping generation", "question", question)
		return NoMatchReply, nil
	}

	prompt := fmt.Sprintf(promptTemplate,
		a.config.MaxResults,
		NoMatchReply,
		search.FormatContext(hits),
		question,
	)

	answer, err := a.provider.Generator().Generate(ctx, prompt)
	if err != nil {
		return "", core.NewPipelineError(core.KindGeneration, "generate answer", err)
	}
	return answer, nil
}

// Repository exposes the publication store.
func (a *Assistant) Repository() storage.PublicationRepository {
	return a.repository
}

// Index exposes the embedding index.
func (a *Assistant) Index() index.Index {
	return a.idx
}

// Close releases the assistant's resources.
func (a *Assistant) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.idx.Close(); err != nil {
		a.logger.Error("error closing index", "err", err)
		return err
	}

	if err := a.repository.Close(); err != nil {
		a.logger.Error("error closing publication repository", "err", err)
		return err
	}
	return nil
}
