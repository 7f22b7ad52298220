package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/history"
	"github.com/gnsm/docent/internal/model"
	"github.com/gnsm/docent/internal/render"
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question from the museum website",
		Long: `Ask answers one question and exits.

The question is matched against the page directory, the matched pages are
fetched live, and the answer is generated from their content only.

Examples:
  # Ask about closing days
  docent ask "휴관일이 언제인가요?"

  # Machine-readable output
  docent ask --format json "천체투영관 예약 방법 알려줘"

  # Skip saving the exchange to history
  docent ask --no-history "주차 요금 알려줘"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAskCmd,
	}

	cmd.Flags().StringP("format", "f", string(render.FormatMarkdown),
		"Output format: markdown or json")
	cmd.Flags().Bool("no-history", false,
		"Do not record the exchange in the history database")

	return cmd
}

// runAskCmd executes the ask command.
func runAskCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writer, err := render.NewWriter(render.Format(format), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return errors.New("question is empty")
	}

	answer, err := answerQuestion(ctx, cfg, logger, question)
	if err != nil {
		return err
	}

	if !noHistory {
		saveExchange(ctx, cfg, logger, answer)
	}

	if _, err := writer.WriteAnswer(answer); err != nil {
		return fmt.Errorf("failed to write answer: %w", err)
	}
	return nil
}

// answerQuestion runs one question through the full pipeline.
func answerQuestion(ctx context.Context, cfg *config.Config, logger *slog.Logger, question string) (*model.Answer, error) {
	dir, err := loadDirectory(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load page directory: %w", err)
	}

	p, err := newAnswerPipeline(cfg, dir, logger)
	if err != nil {
		return nil, err
	}

	answer := &model.Answer{Query: question}
	if err := p.Execute(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// saveExchange records the answer in the history database. History is an
// aid, not a requirement; failures are logged and otherwise ignored.
func saveExchange(ctx context.Context, cfg *config.Config, logger *slog.Logger, answer *model.Answer) {
	if cfg.HistoryDir == "" {
		return
	}

	store, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.Save(ctx, answer); err != nil {
		logger.Warn("failed to save exchange", "error", err)
	}
}
