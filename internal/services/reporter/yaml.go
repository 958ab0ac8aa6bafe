package reporter

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/internal/domain"
	"gopkg.in/yaml.v3"
)

type yamlReporter struct{}

func (yamlReporter) Report(w io.Writer, e domain.Estimate) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(e); err != nil {
		return errors.Wrap(err, "encode yaml report")
	}
	return errors.Wrap(enc.Close(), "flush yaml report")
}
