package store

import (
	"database/sql"

	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
