package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnsm/docent/internal/history"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past questions and answers",
		Long: `History lists recent question-and-answer exchanges from the local
SQLite database.

Examples:
  # Show the last 20 exchanges
  docent history

  # Show the last 5
  docent history --limit 5

  # Delete all stored exchanges
  docent history clear`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", 20, "Maximum number of exchanges to show")

	cmd.AddCommand(NewHistoryClearCmd())

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg.Verbose)

	if cfg.HistoryDir == "" {
		return errors.New("history is disabled (historyDir is empty)")
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryDir, history.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "저장된 대화가 없습니다.")
		return nil
	}
	defer func() { _ = store.Close() }()

	exchanges, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(exchanges) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "저장된 대화가 없습니다.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range exchanges {
		fmt.Fprintf(out, "[%s] %s\n", e.AskedAt.Format("2006-01-02 15:04"), e.Query)
		if len(e.Labels) > 0 {
			fmt.Fprintf(out, "  pages: %s\n", strings.Join(e.Labels, ", "))
		}
		if e.NoMatch {
			fmt.Fprintln(out, "  (no match)")
		}
		fmt.Fprintln(out, indent(e.Response, "  "))
		fmt.Fprintln(out)
	}
	return nil
}

// NewHistoryClearCmd creates the history clear command.
func NewHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored exchanges",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClearCmd,
	}
}

// runHistoryClearCmd executes the history clear command.
func runHistoryClearCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg.Verbose)

	if cfg.HistoryDir == "" {
		return errors.New("history is disabled (historyDir is empty)")
	}

	store, err := history.Open(cfg.HistoryDir, history.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		// Nothing stored yet, nothing to clear.
		return nil
	}
	defer func() { _ = store.Close() }()

	if err := store.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "대화 기록을 삭제했습니다.")
	return nil
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
