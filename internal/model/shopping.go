package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingListItem is a stored shopping-list line. Optional text fields are
// nil rather than empty.
type ShoppingListItem struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Amount     *string   `gorm:"size:100" json:"amount"`
	IsChecked  bool      `gorm:"not null;default:false" json:"is_checked"`
	RecipeID   *string   `gorm:"size:36" json:"recipe_id"`
	RecipeName *string   `gorm:"size:255" json:"recipe_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ShoppingListItem) TableName() string {
	return "shopping_list_items"
}

func (i *ShoppingListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
