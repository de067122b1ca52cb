package service

import (
	"github.com/vkarev/arpub/internal/adapter"
	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/store"
)

type ClientServices struct {
	SettingsService SettingsService
	EstimateService EstimateService
	BalanceService  BalanceService
	PublishService  PublishService
}

func NewClientServices(storages *store.ClientStorages, gateway adapter.Gateway, feed adapter.PriceFeed, logger *logger.Logger) *ClientServices {
	settingsSvc := NewSettingsService(storages.SettingsRepository, logger)

	return &ClientServices{
		SettingsService: settingsSvc,
		EstimateService: NewEstimateService(gateway, feed, logger),
		BalanceService:  NewBalanceService(settingsSvc, gateway, logger),
		PublishService:  NewPublishService(settingsSvc, gateway, logger),
	}
}
