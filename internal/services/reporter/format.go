package reporter

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// formatExact prints the shortest decimal form that round-trips v.
// decimal.NewFromFloat panics on NaN and Inf, those are printed directly.
func formatExact(v float64) string {
	if !isFinite(v) {
		return formatNonFinite(v)
	}
	return decimal.NewFromFloat(v).String()
}

// minSignificant digits kept for values below 1 whatever the precision.
const minSignificant = 4

// formatRounded rounds v to places decimal places, dropping trailing zeros.
// Values below 1 keep at least minSignificant significant digits, so small
// prices never collapse to 0.
func formatRounded(v float64, places int32) string {
	if !isFinite(v) {
		return formatNonFinite(v)
	}

	d := decimal.NewFromFloat(v)
	if d.IsZero() {
		return d.String()
	}

	// position of the leading digit, e.g. -9 for 0.000000001
	exp10 := d.Exponent() + int32(d.NumDigits()) - 1
	if exp10 < 0 && places+exp10+1 < minSignificant {
		places = minSignificant - exp10 - 1
	}
	return d.Round(places).String()
}

// offsetPercent returns the signed distance of bound from price in percent.
// ok is false when the offset is undefined (zero or non-finite price).
func offsetPercent(bound, price float64) (string, bool) {
	if !isFinite(bound) || !isFinite(price) || price == 0 {
		return "", false
	}

	pct := decimal.NewFromFloat(bound).
		Div(decimal.NewFromFloat(price)).
		Sub(decimal.NewFromInt(1)).
		Mul(hundred).
		Round(2)

	s := pct.StringFixed(2)
	if pct.Sign() > 0 {
		s = "+" + s
	}
	return s + "%", true
}

func formatNonFinite(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
