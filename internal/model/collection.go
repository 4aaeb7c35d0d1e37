package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeCollection struct {
	ID        uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"-"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	RecipeIDs StringList `gorm:"type:text;not null;default:'[]'" json:"recipe_ids"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (RecipeCollection) TableName() string {
	return "recipe_collections"
}

func (c *RecipeCollection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.RecipeIDs == nil {
		c.RecipeIDs = StringList{}
	}
	return nil
}

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Recipe{},
		&Ingredient{},
		&InstructionStep{},
		&RecipeTag{},
		&UserSettings{},
		&ShoppingListItem{},
		&RecipeCollection{},
	}
}
