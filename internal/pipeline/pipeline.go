package pipeline

import (
	"context"
	"log/slog"

	"github.com/gnsm/docent/internal/model"
)

// Step is one stage of answering a question. Steps run in sequence and
// accumulate their output on the shared Answer.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., per-step timeouts)
type Step interface {
	// Do executes the step. Page-level failures should be recorded on the
	// answer and return nil; only unrecoverable problems return an error.
	Do(ctx context.Context, answer *model.Answer) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes an ordered list of steps for one question.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates an empty Pipeline. Steps are added with AddSteps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddSteps appends steps in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence against the answer.
//
// Cancellation is checked between steps; long-running work inside a step is
// expected to honor the context itself. The first step error stops the run.
func (p *Pipeline) Execute(ctx context.Context, answer *model.Answer) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"query", answer.Query,
		)

		if err := step.Do(ctx, answer); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"query", answer.Query,
				"error", err,
			)
			return err
		}
	}
	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
