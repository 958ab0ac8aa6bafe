// Package calculator maps a parsed input to an LP price range.
package calculator

import (
	"github.com/vadiminshakov/lprange/internal/domain"
	"go.uber.org/zap"
)

// Service combines the multiplier table with the range formula.
type Service struct {
	logger *zap.Logger
}

// NewService creates a calculator service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Estimate computes the LP position for in.
func (s *Service) Estimate(in domain.Input) domain.Estimate {
	r := Multiplier(in.Timeframe)
	position := Range(in.Price, in.Sentiment, r)

	s.logger.Debug("lp range computed",
		zap.String("sentiment", in.Sentiment.String()),
		zap.String("timeframe", in.Timeframe.String()),
		zap.Float64("price", in.Price),
		zap.Float64("multiplier", r),
		zap.Float64("min_price", position.MinPrice),
		zap.Float64("max_price", position.MaxPrice),
	)

	if !position.Contains(in.Price) {
		s.logger.Warn("current price outside computed range",
			zap.Float64("price", in.Price),
			zap.Float64("min_price", position.MinPrice),
			zap.Float64("max_price", position.MaxPrice),
		)
	}

	return domain.Estimate{
		Sentiment:    in.Sentiment,
		Timeframe:    in.Timeframe,
		CurrentPrice: in.Price,
		Multiplier:   r,
		Position:     position,
	}
}
