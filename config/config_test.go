package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/lprange/internal/domain"
	"go.uber.org/zap/zapcore"
)

func TestGet_Defaults(t *testing.T) {
	conf, err := Get([]string{"100", "neutral", "day"})
	require.NoError(t, err)

	assert.Equal(t, []string{"100", "neutral", "day"}, conf.Args)
	assert.Equal(t, domain.OutputFormatText, conf.Output)
	assert.Equal(t, int32(8), conf.Precision)
	assert.Equal(t, zapcore.WarnLevel, conf.LogLevel)
	assert.False(t, conf.Interactive)
}

func TestGet_Flags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		positional  []string
		output      domain.OutputFormat
		precision   int32
		level       zapcore.Level
		interactive bool
	}{
		{
			name:       "Flags before positionals",
			args:       []string{"-o", "yaml", "100", "bullish", "y"},
			positional: []string{"100", "bullish", "y"},
			output:     domain.OutputFormatYAML,
			precision:  8,
			level:      zapcore.WarnLevel,
		},
		{
			name:       "Flags after positionals",
			args:       []string{"100", "bullish", "y", "--output=plain", "-precision", "3"},
			positional: []string{"100", "bullish", "y"},
			output:     domain.OutputFormatPlain,
			precision:  3,
			level:      zapcore.WarnLevel,
		},
		{
			name:       "Negative price is positional",
			args:       []string{"-5", "neutral", "day", "-log-level", "debug"},
			positional: []string{"-5", "neutral", "day"},
			output:     domain.OutputFormatText,
			precision:  8,
			level:      zapcore.DebugLevel,
		},
		{
			name:       "Negative infinity is positional",
			args:       []string{"-inf", "bearish", "m"},
			positional: []string{"-inf", "bearish", "m"},
			output:     domain.OutputFormatText,
			precision:  8,
			level:      zapcore.WarnLevel,
		},
		{
			name:       "Negative NaN is positional",
			args:       []string{"-nan", "neutral", "day"},
			positional: []string{"-nan", "neutral", "day"},
			output:     domain.OutputFormatText,
			precision:  8,
			level:      zapcore.WarnLevel,
		},
		{
			name:       "Malformed negative number is positional",
			args:       []string{"-1.2.3", "neutral", "day"},
			positional: []string{"-1.2.3", "neutral", "day"},
			output:     domain.OutputFormatText,
			precision:  8,
			level:      zapcore.WarnLevel,
		},
		{
			name:        "Interactive with partial input",
			args:        []string{"-i", "100"},
			positional:  []string{"100"},
			output:      domain.OutputFormatText,
			precision:   8,
			level:       zapcore.WarnLevel,
			interactive: true,
		},
		{
			name:       "Double dash ends flags",
			args:       []string{"-o", "plain", "--", "-o", "neutral", "day"},
			positional: []string{"-o", "neutral", "day"},
			output:     domain.OutputFormatPlain,
			precision:  8,
			level:      zapcore.WarnLevel,
		},
		{
			name:       "Missing positionals are not an error here",
			args:       []string{"100", "bullish"},
			positional: []string{"100", "bullish"},
			output:     domain.OutputFormatText,
			precision:  8,
			level:      zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := Get(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.positional, conf.Args)
			assert.Equal(t, tt.output, conf.Output)
			assert.Equal(t, tt.precision, conf.Precision)
			assert.Equal(t, tt.level, conf.LogLevel)
			assert.Equal(t, tt.interactive, conf.Interactive)
		})
	}
}

func TestGet_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Unknown output", args: []string{"-output", "xml", "100", "neutral", "day"}},
		{name: "Unknown flag", args: []string{"--verbose", "100", "neutral", "day"}},
		{name: "Precision too large", args: []string{"-precision", "40", "100", "neutral", "day"}},
		{name: "Negative precision", args: []string{"-precision=-1", "100", "neutral", "day"}},
		{name: "Bad log level", args: []string{"-log-level", "loud", "100", "neutral", "day"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Get(tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage))
		})
	}
}

func TestGet_UnknownFlagNamesPrice(t *testing.T) {
	_, err := Get([]string{"-abc", "neutral", "day"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsage))
	assert.Contains(t, err.Error(), "-abc")
	assert.Contains(t, err.Error(), "<price>")
}

func TestGet_DoubleDashPassesDashedPrice(t *testing.T) {
	conf, err := Get([]string{"--", "-abc", "neutral", "day"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-abc", "neutral", "day"}, conf.Args)
}

func TestGet_Help(t *testing.T) {
	_, err := Get([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = Get([]string{"100", "neutral", "day", "--help"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)

	out := buf.String()
	assert.Contains(t, out, "usage: lprange [flags] <price> <sentiment> <timeframe>")
	assert.Contains(t, out, "-output")
	assert.Contains(t, out, "-interactive")
}
