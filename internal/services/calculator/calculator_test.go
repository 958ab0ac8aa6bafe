package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/lprange/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestService_Estimate(t *testing.T) {
	service := NewService(zap.NewNop())

	estimate := service.Estimate(domain.Input{
		Price:     100,
		Sentiment: domain.SentimentBearish,
		Timeframe: domain.TimeframeWeek,
	})

	assert.Equal(t, domain.SentimentBearish, estimate.Sentiment)
	assert.Equal(t, domain.TimeframeWeek, estimate.Timeframe)
	assert.Equal(t, 100.0, estimate.CurrentPrice)
	assert.Equal(t, 1.175, estimate.Multiplier)
	assert.InDelta(t, 72.431, estimate.Position.MinPrice, 1e-3)
	assert.Equal(t, 100.0, estimate.Position.MaxPrice)
}

func TestService_NilLogger(t *testing.T) {
	service := NewService(nil)
	assert.NotPanics(t, func() {
		service.Estimate(domain.Input{Price: 1, Sentiment: domain.SentimentNeutral, Timeframe: domain.TimeframeDay})
	})
}

func TestService_LogsComputation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	service := NewService(zap.New(core))

	service.Estimate(domain.Input{Price: 100, Sentiment: domain.SentimentBullish, Timeframe: domain.TimeframeYear})

	entries := logs.FilterMessage("lp range computed").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "bullish", fields["sentiment"])
	assert.Equal(t, "year", fields["timeframe"])
	assert.Equal(t, 3.25, fields["multiplier"])
	assert.Equal(t, 1056.25, fields["max_price"])
}

func TestService_WarnsWhenPriceOutsideRange(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		warn  bool
	}{
		{name: "Positive price", price: 100, warn: false},
		{name: "Zero price", price: 0, warn: false},
		{name: "Negative price", price: -100, warn: true},
		{name: "NaN price", price: math.NaN(), warn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			service := NewService(zap.New(core))

			service.Estimate(domain.Input{Price: tt.price, Sentiment: domain.SentimentNeutral, Timeframe: domain.TimeframeDay})

			entries := logs.FilterMessage("current price outside computed range").All()
			if !tt.warn {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		})
	}
}
