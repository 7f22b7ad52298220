package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gnsm/docent/internal/config"
	"github.com/gnsm/docent/internal/history"
	"github.com/gnsm/docent/internal/model"
	"github.com/gnsm/docent/internal/pipeline"
	"github.com/gnsm/docent/internal/render"
)

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive question-and-answer session",
		Long: `Chat starts an interactive session reading questions from stdin.

Besides free-form questions, the session understands a few commands:

  /topics        Show the topic shortcuts
  /topic <key>   Show one topic group's canned questions
  /help          Show this command list
  /quit          End the session

Each answered exchange is stored in the history database; see
"docent history" to browse past sessions.`,
		Args: cobra.NoArgs,
		RunE: runChatCmd,
	}

	cmd.Flags().Bool("no-history", false,
		"Do not record exchanges in the history database")

	return cmd
}

// runChatCmd executes the chat command.
func runChatCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}

	dir, err := loadDirectory(cfg)
	if err != nil {
		return fmt.Errorf("failed to load page directory: %w", err)
	}
	topics, err := config.NewTopicTree()
	if err != nil {
		return fmt.Errorf("failed to load topic tree: %w", err)
	}

	p, err := newAnswerPipeline(cfg, dir, logger)
	if err != nil {
		return err
	}

	var store *history.Store
	if !noHistory && cfg.HistoryDir != "" {
		store, err = history.Open(cfg.HistoryDir, history.DefaultOptions())
		if err != nil {
			logger.Warn("history unavailable", "error", err)
		} else {
			defer func() { _ = store.Close() }()
		}
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

	session := &chatSession{
		pipeline: p,
		topics:   topics,
		store:    store,
		logger:   logger,
		writer:   render.NewMarkdownWriter(cmd.OutOrStdout()),
		out:      cmd.OutOrStdout(),
	}
	return session.run(ctx, cmd.InOrStdin())
}

// chatSession holds the state of one interactive session.
type chatSession struct {
	pipeline *pipeline.Pipeline
	topics   *config.TopicTree
	store    *history.Store
	logger   *slog.Logger
	writer   *render.MarkdownWriter
	out      io.Writer
}

// run reads questions until EOF or /quit.
func (s *chatSession) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "국립과천과학관 AI 도슨트입니다. 질문을 입력하세요. (/help 로 명령 보기)")
	fmt.Fprintln(s.out)

	scanner := bufio.NewScanner(in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := s.handleCommand(line); quit {
				return nil
			}
			continue
		}

		if err := s.answer(ctx, line); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			s.logger.Error("failed to answer", "query", line, "error", err)
			fmt.Fprintln(s.out, "답변을 생성하지 못했습니다. 다시 시도해 주세요.")
		}
		fmt.Fprintln(s.out)
	}
}

// handleCommand runs a /command line. Returns true when the session ends.
func (s *chatSession) handleCommand(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		fmt.Fprintln(s.out, "이용해 주셔서 감사합니다.")
		return true
	case "/topics":
		if _, err := s.writer.WriteTopics(s.topics); err != nil {
			s.logger.Error("failed to write topics", "error", err)
		}
	case "/topic":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "사용법: /topic <key>  (/topics 로 key 확인)")
			return false
		}
		s.showTopicGroup(fields[1])
	case "/help":
		fmt.Fprintln(s.out, "/topics        주제 바로가기 보기")
		fmt.Fprintln(s.out, "/topic <key>   주제별 추천 질문 보기")
		fmt.Fprintln(s.out, "/quit          대화 종료")
	default:
		fmt.Fprintf(s.out, "알 수 없는 명령입니다: %s (/help 참고)\n", fields[0])
	}
	return false
}

// showTopicGroup prints one group's canned questions.
func (s *chatSession) showTopicGroup(key string) {
	group, ok := s.topics.Group(key)
	if !ok {
		fmt.Fprintf(s.out, "없는 주제입니다: %s (/topics 로 확인)\n", key)
		return
	}
	fmt.Fprintf(s.out, "📌 '%s'에서 더 궁금한 내용을 골라 질문해 보세요:\n", group.Label)
	for _, child := range group.Children {
		fmt.Fprintf(s.out, "  - %s: %s\n", child.Label, child.Query)
	}
}

// answer runs one question through the pipeline and prints the result.
func (s *chatSession) answer(ctx context.Context, question string) error {
	answer := &model.Answer{Query: question}
	if err := s.pipeline.Execute(ctx, answer); err != nil {
		return err
	}

	if s.store != nil {
		if _, err := s.store.Save(ctx, answer); err != nil {
			s.logger.Warn("failed to save exchange", "error", err)
		}
	}

	_, err := s.writer.WriteAnswer(answer)
	return err
}
