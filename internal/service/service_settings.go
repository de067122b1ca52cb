package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/store"
	"github.com/vkarev/arpub/models"
)

// settingsKeyPrivateKey is the repository key under which the wallet
// credential is persisted.
const settingsKeyPrivateKey = "privateKey"

type settingsService struct {
	repo   store.SettingsRepository
	logger *logger.Logger
}

// NewSettingsService constructs the [SettingsService] over the local
// settings repository.
func NewSettingsService(repo store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

// Load implements [SettingsService].
func (s *settingsService) Load(ctx context.Context) (models.Settings, error) {
	value, err := s.repo.Get(ctx, settingsKeyPrivateKey)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return models.Settings{}, nil
		}
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	return models.Settings{PrivateKey: value}, nil
}

// Save implements [SettingsService].
func (s *settingsService) Save(ctx context.Context, settings models.Settings) error {
	if err := s.repo.Put(ctx, settingsKeyPrivateKey, settings.PrivateKey); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.logger.Debug().Msg("settings saved")
	return nil
}
