package reporter

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/internal/domain"
)

type plainReporter struct{}

func (plainReporter) Report(w io.Writer, e domain.Estimate) error {
	_, err := fmt.Fprintf(w,
		"sentiment: %s\ntimeframe: %s\ncurrent price: %s\nmin price: %s\nmax price: %s\n",
		e.Sentiment.Title(),
		e.Timeframe.Title(),
		formatExact(e.CurrentPrice),
		formatExact(e.Position.MinPrice),
		formatExact(e.Position.MaxPrice),
	)
	return errors.Wrap(err, "write plain report")
}
