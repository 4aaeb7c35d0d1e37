package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipefy/backend/internal/model"
	"github.com/recipefy/backend/internal/types"
)

// CollectionService manages named groups of recipe ids.
type CollectionService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCollectionService(db *gorm.DB, log *zap.Logger) *CollectionService {
	return &CollectionService{db: db, log: log}
}

// List returns the user's collections in creation order.
func (s *CollectionService) List(ctx context.Context, userID uuid.UUID) ([]*model.RecipeCollection, error) {
	collections := []*model.RecipeCollection{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

// Get returns one collection of the user.
func (s *CollectionService) Get(ctx context.Context, userID, id uuid.UUID) (*model.RecipeCollection, error) {
	var collection model.RecipeCollection
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&collection)
	if result.Error != nil {
		return nil, fmt.Errorf("get collection %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCollectionNotFound
	}
	return &collection, nil
}

// Replace swaps all collections for the given ones. Names are trimmed,
// unnamed entries are dropped and recipe ids are trimmed and deduplicated.
// A supplied created_at is kept so clients can preserve ordering.
func (s *CollectionService) Replace(ctx context.Context, userID uuid.UUID, collections []types.RecipeCollection) ([]*model.RecipeCollection, error) {
	now := time.Now().UTC()
	rows := make([]*model.RecipeCollection, 0, len(collections))
	seen := make(map[uuid.UUID]bool, len(collections))
	for i, entry := range collections {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		row := &model.RecipeCollection{
			UserID:    userID,
			Name:      name,
			RecipeIDs: dedupeIDs(entry.RecipeIDs),
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		}
		if entry.CreatedAt != nil && !entry.CreatedAt.IsZero() {
			row.CreatedAt = entry.CreatedAt.UTC()
		}
		if entry.ID != nil && *entry.ID != uuid.Nil && !seen[*entry.ID] {
			row.ID = *entry.ID
			seen[row.ID] = true
		}
		rows = append(rows, row)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.RecipeCollection{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("replace collections: %w", err)
	}
	s.log.Info("collections replaced", zap.String("user_id", userID.String()), zap.Int("collections", len(rows)))
	return s.List(ctx, userID)
}

func dedupeIDs(ids []string) model.StringList {
	out := model.StringList{}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
