// Package config reads command-line settings for lprange.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/internal/domain"
	"github.com/vadiminshakov/lprange/internal/services/reporter"
	"go.uber.org/zap/zapcore"
)

// ErrUsage flags could not be parsed or hold unsupported values.
var ErrUsage = errors.New("usage error")

const (
	defaultOutput    = domain.OutputFormatText
	defaultPrecision = 8
	defaultLogLevel  = "warn"
)

// Config command-line settings. Args holds the positional inputs
// (price, sentiment, timeframe) unparsed; flags only affect presentation.
type Config struct {
	Args        []string
	Output      domain.OutputFormat
	Precision   int32
	LogLevel    zapcore.Level
	Interactive bool
}

type flagValues struct {
	output      string
	precision   int
	logLevel    string
	interactive bool
}

func newFlagSet(v *flagValues) *flag.FlagSet {
	fs := flag.NewFlagSet("lprange", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&v.output, "output", string(defaultOutput), "report format: text, plain, yaml")
	fs.StringVar(&v.output, "o", string(defaultOutput), "shorthand for -output")
	fs.IntVar(&v.precision, "precision", defaultPrecision, "decimal places in the text report")
	fs.StringVar(&v.logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&v.interactive, "interactive", false, "prompt for missing inputs")
	fs.BoolVar(&v.interactive, "i", false, "shorthand for -interactive")

	return fs
}

// Get parses args (without the program name).
// Flags may appear before or after the positional arguments; "--" ends flag parsing.
// flag.ErrHelp is returned as is for -h and -help.
func Get(args []string) (Config, error) {
	var v flagValues
	fs := newFlagSet(&v)

	flagArgs, positional := splitArgs(fs, args)
	if err := checkFlagNames(fs, flagArgs); err != nil {
		return Config{}, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, errors.Wrap(ErrUsage, err.Error())
	}

	output := domain.OutputFormat(v.output)
	if !output.IsValid() {
		return Config{}, errors.Wrapf(ErrUsage, "invalid --output provided, --output=%s", v.output)
	}

	if v.precision < 0 || v.precision > reporter.MaxPrecision {
		return Config{}, errors.Wrapf(ErrUsage, "invalid --precision provided (must be 0-%d), --precision=%d",
			reporter.MaxPrecision, v.precision)
	}

	level, err := zapcore.ParseLevel(v.logLevel)
	if err != nil {
		return Config{}, errors.Wrapf(ErrUsage, "invalid --log-level provided, --log-level=%s", v.logLevel)
	}

	return Config{
		Args:        positional,
		Output:      output,
		Precision:   int32(v.precision),
		LogLevel:    level,
		Interactive: v.interactive,
	}, nil
}

// splitArgs separates flags from positional arguments so that flags may
// follow the positionals. Numeric literals such as -5, -inf or -nan and
// malformed ones such as -1.2.3 are prices, not flags.
func splitArgs(fs *flag.FlagSet, args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") || isNumber(arg) || looksNumeric(arg) {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)

		name, hasValue := flagName(arg)
		if hasValue {
			continue
		}
		f := fs.Lookup(name)
		if f == nil || isBoolFlag(f) {
			continue
		}
		// value in the next argument
		if i+1 < len(args) {
			flags = append(flags, args[i+1])
			i++
		}
	}

	return flags, positional
}

// checkFlagNames rejects undefined flags before flag.Parse does, with a hint
// for a malformed negative price that was mistaken for a flag.
func checkFlagNames(fs *flag.FlagSet, flagArgs []string) error {
	for i := 0; i < len(flagArgs); i++ {
		arg := flagArgs[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _ := flagName(arg)
		if name == "h" || name == "help" {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			return errors.Wrapf(ErrUsage,
				"flag provided but not defined: %s (if this is the <%s>, it must be a floating-point number; put -- before it to pass it as is)",
				arg, domain.ArgPrice)
		}
		if !isBoolFlag(f) && !strings.Contains(arg, "=") {
			i++ // skip the value
		}
	}
	return nil
}

func flagName(arg string) (name string, hasValue bool) {
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if idx := strings.Index(name, "="); idx >= 0 {
		return name[:idx], true
	}
	return name, false
}

// looksNumeric reports a dash followed by a digit or a dot, e.g. -1.2.3.
// Flag names never start that way, so such tokens go to the price parser.
func looksNumeric(s string) bool {
	if len(s) < 2 {
		return false
	}
	c := s[1]
	return (c >= '0' && c <= '9') || c == '.'
}

func isNumber(s string) bool {
	_, err := domain.ParsePrice(s)
	return err == nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// Usage writes command help to w.
func Usage(w io.Writer) {
	var v flagValues
	fs := newFlagSet(&v)
	fs.SetOutput(w)

	fmt.Fprintln(w, "usage: lprange [flags] <price> <sentiment> <timeframe>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  <price>      current price, e.g. 1850.25")
	fmt.Fprintln(w, "  <sentiment>  bullish | bearish | neutral")
	fmt.Fprintln(w, "  <timeframe>  d | day | w | week | m | month | y | year")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags:")
	fs.PrintDefaults()
}
