package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/fetch"
	"github.com/gnsm/docent/internal/llm"
	"github.com/gnsm/docent/internal/log"
	"github.com/gnsm/docent/internal/match"
	"github.com/gnsm/docent/internal/pipeline"
)

// buildConfig creates a Config from defaults, the config file, and flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		configPath, _ = cmd.Root().PersistentFlags().GetString("config")
	}

	// An explicitly named config file must exist; the default locations
	// are optional.
	explicit := configPath != ""
	found := config.FindConfigFile(configPath)
	if found != "" {
		if err := config.LoadConfigFile(found, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the credential-masking logger and installs it as the
// slog default.
func setupLogger(verbose bool) *slog.Logger {
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// loadDirectory returns the page directory: the user-supplied file when
// configured, the embedded default otherwise.
func loadDirectory(cfg *config.Config) (*config.Directory, error) {
	if cfg.DirectoryPath != "" {
		return config.LoadDirectory(cfg.DirectoryPath, cfg.BaseURL)
	}
	return config.NewDirectory(cfg.BaseURL)
}

// newFetcher wires a page fetcher from the configuration.
func newFetcher(cfg *config.Config, logger *slog.Logger) *fetch.Fetcher {
	return fetch.New(cfg.BaseURL,
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithMaxTables(cfg.MaxTables),
		fetch.WithLogger(logger),
	)
}

// newAnswerPipeline assembles the full question-answering pipeline.
func newAnswerPipeline(cfg *config.Config, dir *config.Directory, logger *slog.Logger) (*pipeline.Pipeline, error) {
	completer, err := llm.NewOpenAIClient(cfg.APIKey,
		llm.WithModel(cfg.Model),
		llm.WithTemperature(cfg.Temperature),
		llm.WithInstructions(cfg.Instructions),
	)
	if err != nil {
		return nil, err
	}

	matcher := match.New(dir, match.WithCutoff(cfg.FuzzyCutoff))
	fetcher := newFetcher(cfg, logger)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewMatchStep(matcher),
		pipeline.NewFetchStep(dir, fetcher),
		pipeline.NewGenerateStep(completer, dir),
		pipeline.NewPolishStep(),
	)
	return p, nil
}
