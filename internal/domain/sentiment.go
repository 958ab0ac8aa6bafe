package domain

// Sentiment directional market bias that skews the computed range.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

const sentimentExpected = "one of bullish, bearish, neutral"

// Sentiments lists every sentiment in display order.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentBullish, SentimentBearish, SentimentNeutral}
}

// ParseSentiment converts an exact, case-sensitive literal into a Sentiment.
func ParseSentiment(raw string) (Sentiment, error) {
	switch s := Sentiment(raw); s {
	case SentimentBullish, SentimentBearish, SentimentNeutral:
		return s, nil
	}
	return "", newArgumentError(ErrInvalidSentiment, ArgSentiment, raw, sentimentExpected)
}

// String returns the string representation.
func (s Sentiment) String() string {
	return string(s)
}

// Title returns a human-readable representation.
func (s Sentiment) Title() string {
	switch s {
	case SentimentBullish:
		return "Bullish"
	case SentimentBearish:
		return "Bearish"
	case SentimentNeutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}
