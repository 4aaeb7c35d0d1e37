package model

import (
	"time"

	"github.com/google/uuid"
)

// Unit and language preferences accepted by UserSettings.
const (
	UnitPreferenceMetric = "metric"
	UnitPreferenceUS     = "us"
	LanguageEnglish      = "en"
	LanguageGerman       = "de"
)

type UserSettings struct {
	UserID               uuid.UUID `gorm:"type:varchar(36);primarykey" json:"user_id"`
	Country              *string   `gorm:"size:100" json:"country"`
	UnitPreference       string    `gorm:"size:10;not null;default:'metric'" json:"unit_preference"`
	LanguagePreference   string    `gorm:"size:10;not null;default:'en'" json:"language_preference"`
	NotificationsEnabled bool      `gorm:"not null;default:true" json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultUserSettings returns the settings a user starts with.
func DefaultUserSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:               userID,
		UnitPreference:       UnitPreferenceMetric,
		LanguagePreference:   LanguageEnglish,
		NotificationsEnabled: true,
	}
}
