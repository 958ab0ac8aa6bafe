package internal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/config"
	"github.com/vadiminshakov/lprange/internal/domain"
	"github.com/vadiminshakov/lprange/internal/services/calculator"
	"github.com/vadiminshakov/lprange/internal/services/reporter"
	"github.com/vadiminshakov/lprange/internal/setup"
	"go.uber.org/zap"
)

const requiredArgs = 3

// Prompter completes missing positional inputs.
type Prompter func(args []string) ([]string, error)

// Option configures a RangeCalculator.
type Option func(*RangeCalculator)

// WithPrompter replaces the terminal prompt used in interactive mode.
func WithPrompter(p Prompter) Option {
	return func(c *RangeCalculator) {
		c.prompt = p
	}
}

// defaultPrompt draws on stderr so stdout holds only the report.
func defaultPrompt(args []string) ([]string, error) {
	return setup.RunTUI(os.Stderr, args)
}

// RangeCalculator runs one calculation: parse, compute, report.
type RangeCalculator struct {
	Config   config.Config
	logger   *zap.Logger
	service  *calculator.Service
	reporter reporter.Reporter
	prompt   Prompter
}

// NewRangeCalculator creates a calculator for conf.
func NewRangeCalculator(conf config.Config, logger *zap.Logger, opts ...Option) (*RangeCalculator, error) {
	rep, err := reporter.New(conf.Output, conf.Precision)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reporter")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &RangeCalculator{
		Config:   conf,
		logger:   logger,
		service:  calculator.NewService(logger),
		reporter: rep,
		prompt:   defaultPrompt,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Run parses the configured inputs and writes the report to out.
func (c *RangeCalculator) Run(out io.Writer) error {
	args := c.Config.Args

	if len(args) > requiredArgs {
		c.logger.Warn("ignoring extra arguments", zap.Strings("extra", args[requiredArgs:]))
	}

	if c.Config.Interactive && len(args) < requiredArgs {
		var err error
		if args, err = c.prompt(args); err != nil {
			return errors.Wrap(err, "failed to read inputs")
		}
	}

	in, err := domain.ParseInput(args)
	if err != nil {
		return errors.Wrap(err, "failed to parse input")
	}

	estimate := c.service.Estimate(in)

	if err := c.reporter.Report(out, estimate); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	c.logger.Info("lp position reported",
		zap.String("output", c.Config.Output.String()),
		zap.Float64("min_price", estimate.Position.MinPrice),
		zap.Float64("max_price", estimate.Position.MaxPrice),
	)

	return nil
}
