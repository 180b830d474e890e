package laureate

import (
	"github.com/caarlos0/env/v10"

	"github.com/poiesic/laureate/ai"
)

// Config holds assistant-level settings. Values come from the environment
// (optionally seeded from a .env file by the CLI) with working defaults for
// a local Ollama setup.
type Config struct {
	// DataDir is the root directory for persistent state. The embedding
	// index lives under DataDir/index, publications under DataDir/publications.
	DataDir string `env:"LAUREATE_DATA_DIR" envDefault:"data"`

	EmbeddingHost  string  `env:"LAUREATE_EMBEDDING_HOST" envDefault:"http://localhost:11434/v1"`
	GeneratorHost  string  `env:"LAUREATE_GENERATOR_HOST" envDefault:"http://localhost:11434/v1"`
	EmbeddingModel string  `env:"LAUREATE_EMBEDDING_MODEL" envDefault:"nomic-embed-text"`
	GeneratorModel string  `env:"LAUREATE_GENERATOR_MODEL" envDefault:"llama3.1:8b"`
	Token          string  `env:"LAUREATE_API_TOKEN" envDefault:"none"`
	Temperature    float64 `env:"LAUREATE_TEMPERATURE" envDefault:"0.2"`
	MaxTokens      int     `env:"LAUREATE_MAX_TOKENS" envDefault:"1024"`

	// MaxResults caps how many unique publications a search or answer cites.
	MaxResults int `env:"LAUREATE_MAX_RESULTS" envDefault:"5"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AIConfig derives the AI service configuration from assistant settings.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.EmbeddingHost),
		ai.WithGeneratorHost(c.GeneratorHost),
		ai.WithEmbeddingModel(c.EmbeddingModel),
		ai.WithGeneratorModel(c.GeneratorModel),
		ai.WithToken(c.Token),
		ai.WithTemperature(c.Temperature),
		ai.WithMaxTokens(c.MaxTokens),
	)
}
