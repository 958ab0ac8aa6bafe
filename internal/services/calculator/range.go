package calculator

import (
	"fmt"

	"github.com/vadiminshakov/lprange/internal/domain"
)

// Range computes the LP position for the current price.
//
// Bullish keeps the current price as the floor and extends the ceiling by r².
// Bearish mirrors it: the current price is the ceiling and the floor is price/r².
// Neutral applies r once on each side, which is symmetric in log space.
//
// Price is not validated, NaN and infinities propagate through the arithmetic.
func Range(price float64, sentiment domain.Sentiment, r float64) domain.LPPosition {
	switch sentiment {
	case domain.SentimentBearish:
		return domain.LPPosition{
			MinPrice: price / (r * r),
			MaxPrice: price,
		}
	case domain.SentimentNeutral:
		return domain.LPPosition{
			MinPrice: price / r,
			MaxPrice: price * r,
		}
	case domain.SentimentBullish:
		return domain.LPPosition{
			MinPrice: price,
			MaxPrice: price * (r * r),
		}
	default:
		panic(fmt.Sprintf("calculator: unknown sentiment %q", string(sentiment)))
	}
}
