package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/laureate/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestContext(t *testing.T, logLevel string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", logLevel, "")
	return cli.NewContext(&cli.App{Name: "laureate"}, set, nil)
}

func TestSetupLogger(t *testing.T) {
	t.Run("accepts valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			err := setupLogger(newTestContext(t, level))
			assert.NoError(t, err, "level %q", level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		err := setupLogger(newTestContext(t, "verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestLoadConfig_DataFlagOverride(t *testing.T) {
	t.Setenv("LAUREATE_DATA_DIR", "/from/env")

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("data", "", "")
	require.NoError(t, set.Set("data", "/from/flag"))
	ctx := cli.NewContext(&cli.App{Name: "laureate"}, set, nil)

	cfg, err := loadConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.DataDir)
}

func TestIngestCommand_ThreadsCLIContext(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(corpus, []byte("[]"), 0644))

	app := &cli.App{
		Name: "laureate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data"},
		},
		Commands: []*cli.Command{{
			Name:   "ingest",
			Action: ingestCommand,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "batch-size", Value: ingestion.DefaultBatchSize},
				&cli.IntFlag{Name: "pool-size"},
			},
		}},
	}

	// RunContext hands its context to the command; the empty corpus keeps
	// the run local so no embedding service is contacted.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := app.RunContext(ctx, []string{
		"laureate", "--data", filepath.Join(dir, "state"), "ingest", corpus,
	})
	require.NoError(t, err)
}

func TestLoadConfig_EnvWithoutFlag(t *testing.T) {
	t.Setenv("LAUREATE_DATA_DIR", "/from/env")

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("data", "", "")
	ctx := cli.NewContext(&cli.App{Name: "laureate"}, set, nil)

	cfg, err := loadConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)
}
