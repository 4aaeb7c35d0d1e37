package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipefy/backend/internal/metrics"
	"github.com/recipefy/backend/internal/model"
	"github.com/recipefy/backend/internal/quantity"
	"github.com/recipefy/backend/internal/types"
)

// ShoppingListService manages a user's shopping list and its aggregated view.
type ShoppingListService struct {
	db      *gorm.DB
	recipes *RecipeService
	log     *zap.Logger
	metrics QuantityRecorder
}

func NewShoppingListService(db *gorm.DB, recipes *RecipeService, log *zap.Logger, recorder QuantityRecorder) *ShoppingListService {
	return &ShoppingListService{db: db, recipes: recipes, log: log, metrics: recorder}
}

// List returns the user's items in insertion order.
func (s *ShoppingListService) List(ctx context.Context, userID uuid.UUID) ([]*model.ShoppingListItem, error) {
	items := []*model.ShoppingListItem{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list shopping list: %w", err)
	}
	return items, nil
}

// Replace swaps the whole list for items. Text fields are trimmed, blank
// optional fields become nil and entries without a name are dropped.
func (s *ShoppingListService) Replace(ctx context.Context, userID uuid.UUID, items []types.ShoppingListItem) ([]*model.ShoppingListItem, error) {
	now := time.Now().UTC()
	rows := make([]*model.ShoppingListItem, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, entry := range items {
		name := normalizeText(&entry.Name)
		if name == nil {
			continue
		}
		row := &model.ShoppingListItem{
			UserID:     userID,
			Name:       *name,
			Amount:     normalizeText(entry.Amount),
			IsChecked:  entry.IsChecked,
			RecipeID:   normalizeText(entry.RecipeID),
			RecipeName: normalizeText(entry.RecipeName),
		}
		if entry.ID != nil && *entry.ID != uuid.Nil && !seen[*entry.ID] {
			row.ID = *entry.ID
			seen[row.ID] = true
		}
		rows = append(rows, row)
	}
	stampInOrder(rows, now)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.ShoppingListItem{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("replace shopping list: %w", err)
	}
	s.log.Info("shopping list replaced", zap.String("user_id", userID.String()), zap.Int("items", len(rows)))
	return rows, nil
}

// AddRecipe appends a recipe's ingredients with their original amounts.
// Ingredients without a name use their full line.
func (s *ShoppingListService) AddRecipe(ctx context.Context, userID, recipeID uuid.UUID) ([]*model.ShoppingListItem, error) {
	recipe, err := s.recipes.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	rid := recipe.ID.String()
	title := normalizeText(&recipe.Title)
	rows := make([]*model.ShoppingListItem, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			name = strings.TrimSpace(ing.Line)
		}
		if name == "" {
			continue
		}
		amount := ing.Amount
		rows = append(rows, &model.ShoppingListItem{
			UserID:     userID,
			Name:       name,
			Amount:     normalizeText(&amount),
			RecipeID:   &rid,
			RecipeName: title,
		})
	}
	if len(rows) == 0 {
		return rows, nil
	}
	stampInOrder(rows, time.Now().UTC())

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("add recipe to shopping list: %w", err)
	}
	return rows, nil
}

// Aggregate merges the stored items by name. A non-empty units converts each
// merged amount to that system; "original" leaves amounts as summed.
func (s *ShoppingListService) Aggregate(ctx context.Context, userID uuid.UUID, units string) ([]quantity.ShoppingAggregate, error) {
	var system quantity.System
	if units = strings.ToLower(strings.TrimSpace(units)); units != "" {
		var err error
		if system, err = resolveUnits(units); err != nil {
			return nil, err
		}
	}

	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines := make([]quantity.IngredientLine, 0, len(items))
	for _, item := range items {
		line := quantity.IngredientLine{ID: item.ID.String(), Name: item.Name, Checked: item.IsChecked}
		if item.Amount != nil {
			line.Amount = *item.Amount
		}
		lines = append(lines, line)
	}

	groups := quantity.Aggregate(lines)
	for i := range groups {
		if groups[i].Mismatch {
			record(s.metrics, "aggregate", metrics.OutcomeMismatch)
		} else {
			record(s.metrics, "aggregate", metrics.OutcomeParsed)
		}
		if system != "" {
			groups[i].DisplayAmount = quantity.ConvertAmount(groups[i].DisplayAmount, system)
		}
	}
	return groups, nil
}

// stampInOrder gives rows strictly increasing creation times so that ordering
// by created_at reproduces the slice order.
func stampInOrder(rows []*model.ShoppingListItem, start time.Time) {
	for i, row := range rows {
		row.CreatedAt = start.Add(time.Duration(i) * time.Microsecond)
		row.UpdatedAt = row.CreatedAt
	}
}
