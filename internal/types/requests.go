package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/recipefy/backend/internal/quantity"
)

type ShoppingListItem struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	Name       string     `json:"name"`
	Amount     *string    `json:"amount"`
	IsChecked  bool       `json:"is_checked"`
	RecipeID   *string    `json:"recipe_id"`
	RecipeName *string    `json:"recipe_name"`
}

// ShoppingListSyncRequest replaces the whole shopping list.
type ShoppingListSyncRequest struct {
	Items []ShoppingListItem `json:"items"`
}

// UpdateSettingsRequest carries only the settings fields to change.
type UpdateSettingsRequest struct {
	Country              *string `json:"country"`
	UnitPreference       *string `json:"unit_preference"`
	LanguagePreference   *string `json:"language_preference"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

type RecipeCollection struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	Name      string     `json:"name"`
	RecipeIDs []string   `json:"recipe_ids"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CollectionsSyncRequest replaces all of a user's collections.
type CollectionsSyncRequest struct {
	Collections []RecipeCollection `json:"collections"`
}

type ParseRequest struct {
	Amounts []string `json:"amounts" binding:"required"`
}

// ParseResult reports one parsed amount; Quantity is nil for opaque text.
type ParseResult struct {
	Raw      string                   `json:"raw"`
	Quantity *quantity.ParsedQuantity `json:"quantity"`
	Unit     string                   `json:"canonical_unit,omitempty"`
}

type ScaleRequest struct {
	Amounts        []string `json:"amounts" binding:"required"`
	TargetServings float64  `json:"target_servings"`
	BaseServings   float64  `json:"base_servings"`
}

type ConvertRequest struct {
	Amounts []string `json:"amounts" binding:"required"`
	Target  string   `json:"target" binding:"required"`
}

// AmountsResponse pairs each input with its rendered result, in input order.
type AmountsResponse struct {
	Results []AmountResult `json:"results"`
}

type AmountResult struct {
	Raw    string `json:"raw"`
	Result string `json:"result"`
}

type AggregateRequest struct {
	Lines []quantity.IngredientLine `json:"lines" binding:"required"`
	Units string                    `json:"units"`
}
