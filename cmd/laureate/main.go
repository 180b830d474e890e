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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/laureate"
	"github.com/poiesic/laureate/ingestion"
	"github.com/poiesic/laureate/search"
	"github.com/urfave/cli/v2"
)

func main() {
	// Missing .env is fine; the environment and defaults still apply.
	godotenv.Load()

	app := &cli.App{
		Name:  "laureate",
		Usage: "Award-aware retrieval assistant for project publications",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Data directory for the index and publication store (overrides LAUREATE_DATA_DIR)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Rebuild the index and publication store from a corpus file",
				ArgsUsage: "<corpus.json>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to index per batch",
						Value: ingestion.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for per-publication processing (0 = auto)",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Retrieve publications matching a query, filtered by award when one is named",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Usage:   "Maximum unique publications to return",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Ask a question answered from retrieved publications",
				ArgsUsage: "[question]",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "interactive",
						Aliases: []string{"i"},
						Usage:   "Read questions from stdin in a loop",
					},
				},
			},
			{
				Name:   "awards",
				Usage:  "Tally awards across the stored corpus",
				Action: awardsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig builds the assistant configuration, letting global CLI flags
// override the environment.
func loadConfig(c *cli.Context) (*laureate.Config, error) {
	cfg, err := laureate.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dataDir := c.String("data"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func ingestCommand(c *cli.Context) error {
	corpusPath := c.Args().First()
	if corpusPath == "" {
		return fmt.Errorf("corpus file path is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	assistant, err := laureate.NewAssistant(cfg)
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}
	defer assistant.Close()

	opts := []ingestion.Option{
		ingestion.WithBatchSize(c.Int("batch-size")),
	}
	if poolSize := c.Int("pool-size"); poolSize > 0 {
		opts = append(opts, ingestion.WithPoolSize(poolSize))
	}

	stats, err := assistant.IngestFile(c.Context, corpusPath, opts...)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Ingested %d publications (%d with awards) into %d chunks\n",
		stats.Publications, stats.Awarded, stats.Chunks)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if n := c.Int("max-results"); n > 0 {
		cfg.MaxResults = n
	}

	assistant, err := laureate.NewAssistant(cfg)
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}
	defer assistant.Close()

	hits, err := assistant.Search(c.Context, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(hits) == 0 {
		fmt.Println("No matching publications.")
		return nil
	}

	fmt.Println(search.FormatContext(hits))
	return nil
}

func askCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	assistant, err := laureate.NewAssistant(cfg)
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}
	defer assistant.Close()

	if c.Bool("interactive") {
		return askLoop(c.Context, assistant)
	}

	question := strings.Join(c.Args().Slice(), " ")
	if question == "" {
		return fmt.Errorf("question is required (or use --interactive)")
	}

	answer, err := assistant.Ask(c.Context, question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	fmt.Println(answer)
	return nil
}

// askLoop reads questions from stdin until EOF or a quit word.
func askLoop(ctx context.Context, assistant *laureate.Assistant) error {
	fmt.Println("laureate interactive mode. Type 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("Ask: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			return nil
		}

		answer, err := assistant.Ask(ctx, question)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\n%s\n\n", answer)
	}
}

func awardsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	assistant, err := laureate.NewAssistant(cfg)
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}
	defer assistant.Close()

	ctx := c.Context
	entries, err := assistant.AwardTally(ctx)
	if err != nil {
		return fmt.Errorf("award tally failed: %w", err)
	}

	total, err := assistant.Repository().CountPublications(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total publications: %d\n", total)
	for _, entry := range entries {
		fmt.Printf("\nAward: %s\nPublications: %d\n", entry.Award, entry.Count())
		for _, id := range entry.PublicationIDs {
			fmt.Printf("- %s\n", id)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
