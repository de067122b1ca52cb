package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/logger"
)

type coingeckoFeed struct {
	client *resty.Client
	url    string

	logger *logger.Logger
}

// coingeckoResponse models the nested JSON of the simple-price endpoint:
// {"arweave":{"usd":6.41}}.
type coingeckoResponse struct {
	Arweave struct {
		USD float64 `json:"usd"`
	} `json:"arweave"`
}

// NewPriceFeed constructs a [PriceFeed] backed by the coingecko simple-price
// endpoint (or any endpoint responding with the same JSON shape).
func NewPriceFeed(cfg config.Adapter, log *logger.Logger) (PriceFeed, error) {
	if cfg.PriceFeedURL == "" {
		return nil, fmt.Errorf("empty price feed url")
	}

	client := resty.New().
		SetTimeout(cfg.RequestTimeout)

	return &coingeckoFeed{client: client, url: cfg.PriceFeedURL, logger: log}, nil
}

// USDRate implements [PriceFeed]. A single GET; any transport, status, or
// parse failure is returned to the caller, which surfaces it as a notice and
// aborts the estimate.
func (f *coingeckoFeed) USDRate(ctx context.Context) (float64, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.url)
	if err != nil {
		return 0, fmt.Errorf("price feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, fmt.Errorf("price feed request: %w", err)
	}

	var body coingeckoResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, fmt.Errorf("decode price feed response: %w", err)
	}

	if body.Arweave.USD == 0 {
		return 0, fmt.Errorf("price feed response has no arweave/usd rate")
	}

	f.logger.Debug().Float64("usd", body.Arweave.USD).Msg("fetched exchange rate")

	return body.Arweave.USD, nil
}
