package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/everFinance/goar/types"

	"github.com/vkarev/arpub/models"
)

// SettingsService manages the persisted plugin settings. No validation
// happens here: the credential string is stored verbatim and only parsed at
// first use by the wallet-dependent services.
type SettingsService interface {
	// Load returns the stored settings. A never-saved store yields empty
	// settings, not an error.
	Load(ctx context.Context) (models.Settings, error)

	// Save persists the full settings object. Called on every edit in the
	// settings panel.
	Save(ctx context.Context, settings models.Settings) error
}

// EstimateService computes the cost of storing a payload on the network.
type EstimateService interface {
	// Estimate queries the gateway for the winston price of len(data)
	// bytes and the price feed for the AR/USD rate, returning a quote with
	// the fiat amount rounded to 4 decimal places. Quotes are recomputed on
	// every call and never cached.
	Estimate(ctx context.Context, data []byte) (models.PriceQuote, error)
}

// BalanceService reports the wallet holding for the stored credential.
type BalanceService interface {
	// Balance derives the wallet address from the stored credential and
	// returns its current holding as an AR display string.
	Balance(ctx context.Context) (string, error)

	// Address derives and returns the wallet address from the stored
	// credential.
	Address(ctx context.Context) (string, error)
}

// PublishService is the upload workflow: credential parse, transaction
// construction, signing, and submission.
type PublishService interface {
	// Publish signs the payload exactly once and submits it exactly once.
	// HTTP status 200 or 202 from the gateway counts as acceptance and
	// yields the permanent content URL; any other status is an error and
	// no URL is returned. There is no automatic retry.
	Publish(ctx context.Context, doc string) (models.PublishResult, error)
}

// txSigner is the slice of [wallet.Wallet] the services depend on; tests
// substitute a fake through newWallet.
type txSigner interface {
	Address() string
	Owner() string
	SignTransaction(tx *types.Transaction) error
}
