package domain

// Timeframe holding horizon, determines how wide the range gets.
type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

const timeframeExpected = "one of d, day, w, week, m, month, y, year"

// Timeframes lists every timeframe from shortest to longest.
func Timeframes() []Timeframe {
	return []Timeframe{TimeframeDay, TimeframeWeek, TimeframeMonth, TimeframeYear}
}

// ParseTimeframe accepts either the short code or the full word of a timeframe.
func ParseTimeframe(raw string) (Timeframe, error) {
	switch raw {
	case "d", "day":
		return TimeframeDay, nil
	case "w", "week":
		return TimeframeWeek, nil
	case "m", "month":
		return TimeframeMonth, nil
	case "y", "year":
		return TimeframeYear, nil
	}
	return "", newArgumentError(ErrInvalidTimeframe, ArgTimeframe, raw, timeframeExpected)
}

// String returns the string representation.
func (t Timeframe) String() string {
	return string(t)
}

// Code returns the single-letter form accepted on the command line.
func (t Timeframe) Code() string {
	if t == "" {
		return ""
	}
	return string(t)[:1]
}

// Title returns a human-readable representation.
func (t Timeframe) Title() string {
	switch t {
	case TimeframeDay:
		return "Day"
	case TimeframeWeek:
		return "Week"
	case TimeframeMonth:
		return "Month"
	case TimeframeYear:
		return "Year"
	default:
		return "Unknown"
	}
}
