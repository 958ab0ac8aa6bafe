// Package reporter renders a computed LP range.
//
// Every format writes the sentiment, timeframe and current price first,
// followed by both bounds of the position.
package reporter

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/internal/domain"
)

// MaxPrecision upper bound for decimal places in the text report.
const MaxPrecision = 16

// Reporter writes an estimate to w.
type Reporter interface {
	Report(w io.Writer, e domain.Estimate) error
}

// New returns the reporter for format.
// precision is the number of decimal places used by the text report.
func New(format domain.OutputFormat, precision int32) (Reporter, error) {
	if precision < 0 || precision > MaxPrecision {
		return nil, errors.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, precision)
	}

	switch format {
	case domain.OutputFormatText:
		return &textReporter{precision: precision}, nil
	case domain.OutputFormatPlain:
		return &plainReporter{}, nil
	case domain.OutputFormatYAML:
		return &yamlReporter{}, nil
	default:
		return nil, errors.Errorf("unsupported output format %q", format.String())
	}
}
