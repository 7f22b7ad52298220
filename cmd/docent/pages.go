package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/fetch"
	"github.com/gnsm/docent/internal/render"
)

// NewPagesCmd creates the pages command.
func NewPagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List the pages docent can answer from",
		Long: `Pages lists the static directory of museum website pages, grouped
by section. A question can only be answered from pages in this directory.

Examples:
  # Show the directory
  docent pages

  # Check that every directory page still responds
  docent pages verify`,
		Args: cobra.NoArgs,
		RunE: runPagesCmd,
	}

	cmd.AddCommand(NewPagesVerifyCmd())

	return cmd
}

// runPagesCmd executes the pages command.
func runPagesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg.Verbose)

	dir, err := loadDirectory(cfg)
	if err != nil {
		return fmt.Errorf("failed to load page directory: %w", err)
	}

	_, err = render.NewMarkdownWriter(cmd.OutOrStdout()).WriteDirectory(dir)
	return err
}

// NewPagesVerifyCmd creates the pages verify command.
func NewPagesVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every directory page responds",
		Long: `Verify issues a request to every page in the directory and reports
which ones no longer respond. Use it after the museum restructures its
website to find stale directory entries.`,
		Args: cobra.NoArgs,
		RunE: runPagesVerifyCmd,
	}

	cmd.Flags().IntP("concurrency", "n", config.DefaultVerifyConcurrency,
		"Maximum number of concurrent requests")

	return cmd
}

// runPagesVerifyCmd executes the pages verify command.
func runPagesVerifyCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}
	if concurrency <= 0 {
		concurrency = cfg.VerifyConcurrency
	}

	dir, err := loadDirectory(cfg)
	if err != nil {
		return fmt.Errorf("failed to load page directory: %w", err)
	}

	fetcher := newFetcher(cfg, logger)
	results := fetcher.VerifyDirectory(cmd.Context(), dir, concurrency)

	if _, err := render.NewMarkdownWriter(cmd.OutOrStdout()).WriteVerifyResults(results); err != nil {
		return err
	}

	for _, r := range results {
		if !r.OK() {
			return fmt.Errorf("%d of %d pages failed verification", countFailed(results), len(results))
		}
	}
	return nil
}

// countFailed counts verification failures.
func countFailed(results []fetch.VerifyResult) int {
	var n int
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
