package store

import (
	"context"
	"fmt"

	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value that
// can be passed around the service layer. Currently it holds only
// [SettingsRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// SettingsRepository is the SQLite-backed key/value repository for
	// persisted plugin settings.
	SettingsRepository SettingsRepository
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SettingsRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SettingsRepository: NewSettingsRepository(db, logger),
	}, nil
}
