package adapter

import (
	"context"
	"math/big"

	"github.com/everFinance/goar/types"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Gateway is the client-side contract for the Arweave gateway HTTP API.
// Amounts are winston (the atomic unit, 1 AR = 10^12 winston) as big integers
// because they routinely exceed float precision.
type Gateway interface {
	// Price returns the winston cost of storing numBytes bytes.
	Price(ctx context.Context, numBytes int) (*big.Int, error)

	// Balance returns the winston holding of the given wallet address.
	Balance(ctx context.Context, address string) (*big.Int, error)

	// TxAnchor returns the anchor (last_tx value) required when building a
	// new transaction.
	TxAnchor(ctx context.Context) (string, error)

	// SubmitTx posts a signed transaction and returns the raw HTTP status
	// code. The success policy (200/202) belongs to the caller; any
	// transport failure is returned as an error with a zero status.
	SubmitTx(ctx context.Context, tx *types.Transaction) (int, error)

	// BaseURL returns the normalised gateway base URL, used to derive the
	// permanent content URL of an accepted transaction.
	BaseURL() string
}

// PriceFeed is the contract for the fiat exchange-rate source.
type PriceFeed interface {
	// USDRate returns the current AR/USD exchange rate.
	USDRate(ctx context.Context) (float64, error)
}
