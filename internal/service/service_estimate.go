package service

import (
	"context"
	"fmt"
	"math"

	"github.com/vkarev/arpub/internal/adapter"
	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/wallet"
	"github.com/vkarev/arpub/models"
)

type estimateService struct {
	gateway adapter.Gateway
	feed    adapter.PriceFeed
	logger  *logger.Logger
}

// NewEstimateService constructs the [EstimateService] over the gateway and
// the fiat price feed.
func NewEstimateService(gateway adapter.Gateway, feed adapter.PriceFeed, logger *logger.Logger) EstimateService {
	return &estimateService{gateway: gateway, feed: feed, logger: logger}
}

// Estimate implements [EstimateService].
func (s *estimateService) Estimate(ctx context.Context, data []byte) (models.PriceQuote, error) {
	winston, err := s.gateway.Price(ctx, len(data))
	if err != nil {
		return models.PriceQuote{}, fmt.Errorf("query byte price: %w", err)
	}

	ar := wallet.WinstonToAR(winston)

	rate, err := s.feed.USDRate(ctx)
	if err != nil {
		return models.PriceQuote{}, fmt.Errorf("query exchange rate: %w", err)
	}

	usd := math.Round(rate*wallet.ARToFloat(ar)*10000) / 10000

	quote := models.PriceQuote{
		Winston: winston.String(),
		AR:      ar,
		USD:     usd,
	}

	s.logger.Debug().
		Int("payload_bytes", len(data)).
		Str("winston", quote.Winston).
		Str("ar", quote.AR).
		Float64("usd", quote.USD).
		Msg("price estimated")

	return quote, nil
}
