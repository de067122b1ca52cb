package service

import (
	"context"
	"fmt"

	"github.com/vkarev/arpub/internal/adapter"
	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/wallet"
)

// newWallet parses a stored credential into a signer. Package variable so
// tests can substitute a fake without generating real RSA keys.
var newWallet = func(keyJSON []byte) (txSigner, error) {
	return wallet.New(keyJSON)
}

type balanceService struct {
	settings SettingsService
	gateway  adapter.Gateway
	logger   *logger.Logger
}

// NewBalanceService constructs the [BalanceService].
func NewBalanceService(settings SettingsService, gateway adapter.Gateway, logger *logger.Logger) BalanceService {
	return &balanceService{settings: settings, gateway: gateway, logger: logger}
}

// Address implements [BalanceService].
func (s *balanceService) Address(ctx context.Context) (string, error) {
	signer, err := s.loadSigner(ctx)
	if err != nil {
		return "", err
	}
	return signer.Address(), nil
}

// Balance implements [BalanceService].
func (s *balanceService) Balance(ctx context.Context) (string, error) {
	signer, err := s.loadSigner(ctx)
	if err != nil {
		return "", err
	}

	winston, err := s.gateway.Balance(ctx, signer.Address())
	if err != nil {
		return "", fmt.Errorf("query wallet balance: %w", err)
	}

	return wallet.WinstonToAR(winston), nil
}

func (s *balanceService) loadSigner(ctx context.Context) (txSigner, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	if settings.PrivateKey == "" {
		return nil, ErrNoCredential
	}

	signer, err := newWallet([]byte(settings.PrivateKey))
	if err != nil {
		return nil, err
	}
	return signer, nil
}
