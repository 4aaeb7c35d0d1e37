package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipefy/backend/internal/model"
	"github.com/recipefy/backend/internal/types"
)

// SettingsService stores per-user preferences.
type SettingsService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSettingsService(db *gorm.DB, log *zap.Logger) *SettingsService {
	return &SettingsService{db: db, log: log}
}

// Get returns the user's settings, creating the defaults on first access.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error) {
	return s.getOrCreate(s.db.WithContext(ctx), userID)
}

func (s *SettingsService) getOrCreate(db *gorm.DB, userID uuid.UUID) (*model.UserSettings, error) {
	var settings model.UserSettings
	err := db.First(&settings, "user_id = ?", userID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	defaults := model.DefaultUserSettings(userID)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error; err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}
	if err := db.First(&settings, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

// Update applies only the fields present in req.
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, req *types.UpdateSettingsRequest) (*model.UserSettings, error) {
	unit, lang, err := validateSettings(req)
	if err != nil {
		return nil, err
	}

	var updated *model.UserSettings
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := s.getOrCreate(tx, userID)
		if err != nil {
			return err
		}
		if req.Country != nil {
			settings.Country = normalizeText(req.Country)
		}
		if unit != "" {
			settings.UnitPreference = unit
		}
		if lang != "" {
			settings.LanguagePreference = lang
		}
		if req.NotificationsEnabled != nil {
			settings.NotificationsEnabled = *req.NotificationsEnabled
		}
		if err := tx.Save(settings).Error; err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		updated = settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("settings updated", zap.String("user_id", userID.String()), zap.String("unit_preference", updated.UnitPreference))
	return updated, nil
}

func validateSettings(req *types.UpdateSettingsRequest) (unit, lang string, err error) {
	if req.UnitPreference != nil {
		unit = strings.ToLower(strings.TrimSpace(*req.UnitPreference))
		if unit != model.UnitPreferenceMetric && unit != model.UnitPreferenceUS {
			return "", "", fmt.Errorf("%w: unit_preference must be metric or us", ErrInvalidInput)
		}
	}
	if req.LanguagePreference != nil {
		lang = strings.ToLower(strings.TrimSpace(*req.LanguagePreference))
		if lang != model.LanguageEnglish && lang != model.LanguageGerman {
			return "", "", fmt.Errorf("%w: language_preference must be en or de", ErrInvalidInput)
		}
	}
	return unit, lang, nil
}

// normalizeText trims s and maps blank values to nil.
func normalizeText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
