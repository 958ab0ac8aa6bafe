package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const priceExpected = "a floating-point number, e.g. 1850.25"

// ParsePrice parses a decimal float64 price.
// Sign and finiteness are not checked; a literal beyond float64 range
// yields ±Inf (or 0 on underflow) rather than an error. Hexadecimal
// literals are rejected, a signed NaN is accepted.
func ParsePrice(raw string) (float64, error) {
	unsigned := strings.TrimLeft(raw, "+-")
	if len(raw)-len(unsigned) <= 1 {
		if strings.EqualFold(unsigned, "nan") {
			return math.NaN(), nil
		}
		if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
			return 0, newArgumentError(ErrInvalidPrice, ArgPrice, raw, priceExpected)
		}
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, newArgumentError(ErrInvalidPrice, ArgPrice, raw, priceExpected)
	}
	return price, nil
}
