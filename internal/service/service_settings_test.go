package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/mock"
	"github.com/vkarev/arpub/internal/store"
	"github.com/vkarev/arpub/models"
)

func TestSettingsService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, logger.Nop())

	t.Run("stored credential is returned", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), "privateKey").Return(`{"kty":"RSA"}`, nil)

		settings, err := svc.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, `{"kty":"RSA"}`, settings.PrivateKey)
	})

	t.Run("never-saved store yields empty settings", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), "privateKey").Return("", store.ErrSettingNotFound)

		settings, err := svc.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.Settings{}, settings)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), "privateKey").Return("", store.ErrExecutingQuery)

		_, err := svc.Load(context.Background())
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

func TestSettingsService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, logger.Nop())

	t.Run("credential is persisted verbatim", func(t *testing.T) {
		repo.EXPECT().Put(gomock.Any(), "privateKey", "raw jwk text").Return(nil)

		err := svc.Save(context.Background(), models.Settings{PrivateKey: "raw jwk text"})
		assert.NoError(t, err)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		wantErr := errors.New("disk full")
		repo.EXPECT().Put(gomock.Any(), "privateKey", gomock.Any()).Return(wantErr)

		err := svc.Save(context.Background(), models.Settings{PrivateKey: "key"})
		assert.ErrorIs(t, err, wantErr)
	})
}
