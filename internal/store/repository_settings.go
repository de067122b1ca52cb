package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vkarev/arpub/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs the SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// Get implements [SettingsRepository].
func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		r.logger.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to scan settings row")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

// Put implements [SettingsRepository]. Upsert: every settings edit replaces
// the whole value for the key.
func (r *settingsRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.Put").
			Str("key", key).
			Msg("failed to upsert setting")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
