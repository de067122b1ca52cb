package adapter

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/everFinance/goar/types"
	"github.com/go-resty/resty/v2"

	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/logger"
)

type httpGateway struct {
	client  *resty.Client
	baseURL string

	logger *logger.Logger
}

// NewGateway constructs an HTTP implementation of [Gateway] against the
// configured Arweave gateway. It normalises and validates the base URL and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.GatewayURL is empty or cannot be parsed as a valid
// URL.
func NewGateway(cfg config.Adapter, log *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.GatewayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpGateway{client: client, baseURL: baseURL, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [Gateway].
func (g *httpGateway) BaseURL() string {
	return g.baseURL
}

// Price implements [Gateway]. It GETs /price/{bytes}; the body is a bare
// decimal winston amount.
func (g *httpGateway) Price(ctx context.Context, numBytes int) (*big.Int, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/price/%d", numBytes))
	if err != nil {
		return nil, fmt.Errorf("price request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("price request: %w", err)
	}

	return parseWinston(resp.Body())
}

// Balance implements [Gateway]. It GETs /wallet/{address}/balance; the body
// is a bare decimal winston amount.
func (g *httpGateway) Balance(ctx context.Context, address string) (*big.Int, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/wallet/%s/balance", address))
	if err != nil {
		return nil, fmt.Errorf("balance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("balance request: %w", err)
	}

	return parseWinston(resp.Body())
}

// TxAnchor implements [Gateway]. It GETs /tx_anchor; the body is the anchor
// string used as last_tx when building a transaction.
func (g *httpGateway) TxAnchor(ctx context.Context) (string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get("/tx_anchor")
	if err != nil {
		return "", fmt.Errorf("tx anchor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("tx anchor request: %w", err)
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// SubmitTx implements [Gateway]. It POSTs the signed transaction as JSON to
// /tx and returns the raw status code without interpreting it: the upload
// workflow decides which statuses count as acceptance.
func (g *httpGateway) SubmitTx(ctx context.Context, tx *types.Transaction) (int, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(tx).
		Post("/tx")
	if err != nil {
		return 0, fmt.Errorf("submit transaction request: %w", err)
	}

	g.logger.Debug().
		Str("tx_id", tx.ID).
		Int("status", resp.StatusCode()).
		Msg("transaction submitted")

	return resp.StatusCode(), nil
}

func parseWinston(body []byte) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(string(body)), 10)
	if !ok {
		return nil, fmt.Errorf("parse winston amount %q", strings.TrimSpace(string(body)))
	}
	return amount, nil
}
