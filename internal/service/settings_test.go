package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipefy/backend/internal/service"
	"github.com/recipefy/backend/internal/testhelpers"
	"github.com/recipefy/backend/internal/types"
)

func TestSettingsGetCreatesDefaults(t *testing.T) {
	svc := service.NewSettingsService(testhelpers.SetupSQLite(t), zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	settings, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, settings.UserID)
	assert.Equal(t, "metric", settings.UnitPreference)
	assert.Equal(t, "en", settings.LanguagePreference)
	assert.True(t, settings.NotificationsEnabled)
	assert.Nil(t, settings.Country)

	again, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, settings.CreatedAt.Unix(), again.CreatedAt.Unix())
}

func TestSettingsUpdateAppliesOnlyPresentFields(t *testing.T) {
	svc := service.NewSettingsService(testhelpers.SetupSQLite(t), zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()
	off := false

	settings, err := svc.Update(ctx, userID, &types.UpdateSettingsRequest{
		UnitPreference:       strPtr(" US "),
		Country:              strPtr(" DE "),
		NotificationsEnabled: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, "us", settings.UnitPreference)
	assert.Equal(t, "en", settings.LanguagePreference)
	assert.Equal(t, "DE", *settings.Country)
	assert.False(t, settings.NotificationsEnabled)

	settings, err = svc.Update(ctx, userID, &types.UpdateSettingsRequest{LanguagePreference: strPtr("de"), Country: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "us", settings.UnitPreference)
	assert.Equal(t, "de", settings.LanguagePreference)
	assert.Nil(t, settings.Country)

	stored, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, stored.NotificationsEnabled)
	assert.Equal(t, "de", stored.LanguagePreference)
}

func TestSettingsUpdateRejectsUnknownValues(t *testing.T) {
	svc := service.NewSettingsService(testhelpers.SetupSQLite(t), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Update(ctx, uuid.New(), &types.UpdateSettingsRequest{UnitPreference: strPtr("imperial")})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Update(ctx, uuid.New(), &types.UpdateSettingsRequest{LanguagePreference: strPtr("fr")})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
