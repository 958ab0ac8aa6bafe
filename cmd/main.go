// Command lprange suggests a liquidity-provision price range for an asset
// from its current price, a market sentiment and a holding timeframe.
//
// Usage:
//
//	lprange [flags] <price> <sentiment> <timeframe>
//	lprange 1850.25 bullish w
//	lprange -o yaml 100 neutral month
//
// Sentiment is one of bullish, bearish, neutral. Timeframe is one of
// d/day, w/week, m/month, y/year.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/config"
	"github.com/vadiminshakov/lprange/internal"
	"github.com/vadiminshakov/lprange/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	conf, err := config.Get(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			config.Usage(stdout)
			return 0
		}
		return fail(stderr, err)
	}

	logger := newLogger(stderr, conf.LogLevel)
	defer logger.Sync() //nolint:errcheck

	calc, err := internal.NewRangeCalculator(conf, logger)
	if err != nil {
		logger.Error("failed to create range calculator", zap.Error(err))
		return fail(stderr, err)
	}

	if err := calc.Run(stdout); err != nil {
		logger.Debug("run failed", zap.Error(err))
		return fail(stderr, err)
	}

	return 0
}

// fail prints the root cause of err with a usage hint and returns the exit status.
func fail(stderr io.Writer, err error) int {
	msg := err.Error()

	var argErr *domain.ArgumentError
	if errors.As(err, &argErr) {
		msg = argErr.Error()
	}

	fmt.Fprintf(stderr, "error: %s\n", msg)
	if argErr != nil || errors.Is(err, config.ErrUsage) {
		fmt.Fprintln(stderr, "usage: lprange [flags] <price> <sentiment> <timeframe> (see -h)")
	}
	return 1
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}
