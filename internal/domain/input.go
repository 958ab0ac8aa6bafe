// Package domain defines the inputs and results of the LP range calculation.
package domain

// positional argument names, in command-line order
const (
	ArgPrice     = "price"
	ArgSentiment = "sentiment"
	ArgTimeframe = "timeframe"
)

// Input the three parsed command-line values.
type Input struct {
	Price     float64
	Sentiment Sentiment
	Timeframe Timeframe
}

// ParseInput parses price, sentiment and timeframe from positional arguments.
// Arguments are checked in order and the first failure is returned.
// Anything after the third argument is ignored.
func ParseInput(args []string) (Input, error) {
	if err := requireArgs(args); err != nil {
		return Input{}, err
	}

	price, err := ParsePrice(args[0])
	if err != nil {
		return Input{}, err
	}

	sentiment, err := ParseSentiment(args[1])
	if err != nil {
		return Input{}, err
	}

	timeframe, err := ParseTimeframe(args[2])
	if err != nil {
		return Input{}, err
	}

	return Input{
		Price:     price,
		Sentiment: sentiment,
		Timeframe: timeframe,
	}, nil
}

func requireArgs(args []string) error {
	names := []string{ArgPrice, ArgSentiment, ArgTimeframe}
	expected := []string{priceExpected, sentimentExpected, timeframeExpected}

	if len(args) >= len(names) {
		return nil
	}
	missing := len(args)
	return newArgumentError(ErrMissingArgument, names[missing], "", expected[missing])
}
