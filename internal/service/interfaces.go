package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/recipefy/backend/internal/model"
	"github.com/recipefy/backend/internal/quantity"
	"github.com/recipefy/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, userID, id uuid.UUID) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.RecipeRequest) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, id uuid.UUID, req *types.RecipeRequest) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error
}

// IRecipeViewService renders recipes for a serving count and unit system.
type IRecipeViewService interface {
	View(ctx context.Context, userID, id uuid.UUID, servings *float64, units string) (*types.RecipeView, error)
}

// IShoppingListService defines the interface for shopping list operations
type IShoppingListService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*model.ShoppingListItem, error)
	Replace(ctx context.Context, userID uuid.UUID, items []types.ShoppingListItem) ([]*model.ShoppingListItem, error)
	AddRecipe(ctx context.Context, userID, recipeID uuid.UUID) ([]*model.ShoppingListItem, error)
	Aggregate(ctx context.Context, userID uuid.UUID, units string) ([]quantity.ShoppingAggregate, error)
}

// ISettingsService defines the interface for user settings operations
type ISettingsService interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error)
	Update(ctx context.Context, userID uuid.UUID, req *types.UpdateSettingsRequest) (*model.UserSettings, error)
}

// ICollectionService defines the interface for recipe collection operations
type ICollectionService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*model.RecipeCollection, error)
	Replace(ctx context.Context, userID uuid.UUID, collections []types.RecipeCollection) ([]*model.RecipeCollection, error)
}

// IMediaService stores recipe images.
type IMediaService interface {
	UploadRecipeImage(ctx context.Context, userID, recipeID uuid.UUID, filename, contentType string, body io.Reader) (*model.Recipe, error)
}

// QuantityRecorder receives one event per processed ingredient amount.
type QuantityRecorder interface {
	QuantityOperation(operation, outcome string)
}

func record(r QuantityRecorder, operation, outcome string) {
	if r != nil {
		r.QuantityOperation(operation, outcome)
	}
}
