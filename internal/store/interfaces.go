package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository is the low-level key/value repository for persisted
// plugin settings. Values are stored verbatim; the settings service is
// responsible for mapping them onto [models.Settings].
type SettingsRepository interface {
	// Get returns the stored value for key, or [ErrSettingNotFound] when no
	// row exists.
	Get(ctx context.Context, key string) (string, error)

	// Put inserts or replaces the value for key.
	Put(ctx context.Context, key, value string) error
}
