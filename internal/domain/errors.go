package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingArgument fewer positional arguments than required.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidPrice price is not a floating-point literal.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidSentiment sentiment is not one of the recognized literals.
	ErrInvalidSentiment = errors.New("invalid sentiment")
	// ErrInvalidTimeframe timeframe is not one of the recognized literals.
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)

// ArgumentError rejected command-line argument.
type ArgumentError struct {
	// Kind one of the Err* sentinels above.
	Kind error
	// Name argument name as shown in usage, e.g. "price".
	Name string
	// Value raw argument, empty when the argument is missing.
	Value string
	// Expected human-readable description of the accepted format.
	Expected string
}

func (e *ArgumentError) Error() string {
	if errors.Is(e.Kind, ErrMissingArgument) {
		return fmt.Sprintf("%s: <%s> is required, expected %s", e.Kind, e.Name, e.Expected)
	}
	return fmt.Sprintf("%s %q for <%s>, expected %s", e.Kind, e.Value, e.Name, e.Expected)
}

// Unwrap returns the sentinel kind, so errors.Is works on wrapped argument errors.
func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func newArgumentError(kind error, name, value, expected string) *ArgumentError {
	return &ArgumentError{
		Kind:     kind,
		Name:     name,
		Value:    value,
		Expected: expected,
	}
}
