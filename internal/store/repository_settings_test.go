package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarev/arpub/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) SettingsRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewSettingsRepository(storeDB, logger.Nop())
}

const selectSettingSQL = `SELECT value FROM settings WHERE key = ?`

// ── Get ─────────────────────────────────────────────────────────────────────

func TestSettingsGet_Found(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectSettingSQL)).
		WithArgs("privateKey").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"kty":"RSA"}`))

	got, err := repo.Get(context.Background(), "privateKey")
	require.NoError(t, err)
	assert.Equal(t, `{"kty":"RSA"}`, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsGet_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectSettingSQL)).
		WithArgs("privateKey").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), "privateKey")
	assert.ErrorIs(t, err, ErrSettingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsGet_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectSettingSQL)).
		WithArgs("privateKey").
		WillReturnError(assert.AnError)

	_, err := repo.Get(context.Background(), "privateKey")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── Put ─────────────────────────────────────────────────────────────────────

func TestSettingsPut_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO settings (key,value,updated_at) VALUES (?,?,?)`)).
		WithArgs("privateKey", "secret", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Put(context.Background(), "privateKey", "secret")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsPut_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO settings`)).
		WillReturnError(assert.AnError)

	err := repo.Put(context.Background(), "privateKey", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
