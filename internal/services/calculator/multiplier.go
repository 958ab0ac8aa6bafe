package calculator

import (
	"fmt"

	"github.com/vadiminshakov/lprange/internal/domain"
)

// Multiplier returns the range multiplier r for a timeframe.
// The values approximate a containment band that widens with the horizon.
func Multiplier(tf domain.Timeframe) float64 {
	switch tf {
	case domain.TimeframeDay:
		return 1.065
	case domain.TimeframeWeek:
		return 1.175
	case domain.TimeframeMonth:
		return 1.4
	case domain.TimeframeYear:
		return 3.25
	default:
		// timeframes only come from domain.ParseTimeframe
		panic(fmt.Sprintf("calculator: unknown timeframe %q", string(tf)))
	}
}
