package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/everFinance/goar/types"
	"github.com/everFinance/goar/utils"

	"github.com/vkarev/arpub/internal/adapter"
	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/models"
)

type publishService struct {
	settings SettingsService
	gateway  adapter.Gateway
	logger   *logger.Logger
}

// NewPublishService constructs the [PublishService].
func NewPublishService(settings SettingsService, gateway adapter.Gateway, logger *logger.Logger) PublishService {
	return &publishService{settings: settings, gateway: gateway, logger: logger}
}

// Publish implements [PublishService]. One confirmation click produces
// exactly one signed transaction and one submission; failures propagate to
// the caller so the modal can restore its button state.
func (s *publishService) Publish(ctx context.Context, doc string) (models.PublishResult, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return models.PublishResult{}, err
	}
	if settings.PrivateKey == "" {
		return models.PublishResult{}, ErrNoCredential
	}

	signer, err := newWallet([]byte(settings.PrivateKey))
	if err != nil {
		return models.PublishResult{}, err
	}

	data := []byte(doc)

	anchor, err := s.gateway.TxAnchor(ctx)
	if err != nil {
		return models.PublishResult{}, fmt.Errorf("fetch tx anchor: %w", err)
	}

	reward, err := s.gateway.Price(ctx, len(data))
	if err != nil {
		return models.PublishResult{}, fmt.Errorf("fetch reward: %w", err)
	}

	tx := &types.Transaction{
		Format:   2,
		Owner:    signer.Owner(),
		Target:   "",
		Quantity: "0",
		Tags:     utils.TagsEncode([]types.Tag{{Name: "Content-Type", Value: "text/html"}}),
		Data:     utils.Base64Encode(data),
		DataSize: strconv.Itoa(len(data)),
		Reward:   reward.String(),
		LastTx:   anchor,
	}

	if err = signer.SignTransaction(tx); err != nil {
		return models.PublishResult{}, err
	}

	status, err := s.gateway.SubmitTx(ctx, tx)
	if err != nil {
		return models.PublishResult{}, err
	}

	if status != http.StatusOK && status != http.StatusAccepted {
		return models.PublishResult{}, fmt.Errorf("%w: status %d", ErrUploadRejected, status)
	}

	result := models.PublishResult{
		TxID: tx.ID,
		URL:  s.gateway.BaseURL() + "/" + tx.ID,
	}

	s.logger.Info().
		Str("tx_id", result.TxID).
		Str("url", result.URL).
		Int("bytes", len(data)).
		Msg("document published")

	return result, nil
}
