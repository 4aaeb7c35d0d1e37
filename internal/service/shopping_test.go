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

func strPtr(s string) *string { return &s }

func newShoppingService(t *testing.T) (*service.ShoppingListService, *service.RecipeService, recordedOps) {
	db := testhelpers.SetupSQLite(t)
	recipes := service.NewRecipeService(db, zap.NewNop())
	ops := recordedOps{}
	return service.NewShoppingListService(db, recipes, zap.NewNop(), ops), recipes, ops
}

func TestReplaceShoppingListNormalizesEntries(t *testing.T) {
	svc, _, _ := newShoppingService(t)
	ctx := context.Background()
	userID := uuid.New()
	keep := uuid.New()

	items, err := svc.Replace(ctx, userID, []types.ShoppingListItem{
		{ID: &keep, Name: "  Milk ", Amount: strPtr(" 1 cup "), RecipeName: strPtr("  ")},
		{Name: "   ", Amount: strPtr("2")},
		{Name: "Eggs", Amount: strPtr(""), IsChecked: true},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, keep, items[0].ID)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "1 cup", *items[0].Amount)
	assert.Nil(t, items[0].RecipeName)
	assert.Nil(t, items[1].Amount)
	assert.True(t, items[1].IsChecked)

	listed, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Milk", listed[0].Name)
	assert.Equal(t, "Eggs", listed[1].Name)

	items, err = svc.Replace(ctx, userID, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	listed, err = svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestReplaceShoppingListLeavesOtherUsersAlone(t *testing.T) {
	svc, _, _ := newShoppingService(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Replace(ctx, alice, []types.ShoppingListItem{{Name: "Milk"}})
	require.NoError(t, err)
	_, err = svc.Replace(ctx, bob, []types.ShoppingListItem{{Name: "Bread"}})
	require.NoError(t, err)

	listed, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Milk", listed[0].Name)
}

func TestAddRecipeToShoppingList(t *testing.T) {
	svc, recipes, _ := newShoppingService(t)
	ctx := context.Background()
	userID := uuid.New()

	req := pancakeRequest()
	req.Ingredients = append(req.Ingredients, types.Ingredient{Line: "a handful of berries"})
	recipe, err := recipes.CreateRecipe(ctx, userID, req)
	require.NoError(t, err)

	added, err := svc.AddRecipe(ctx, userID, recipe.ID)
	require.NoError(t, err)
	require.Len(t, added, 4)
	assert.Equal(t, "flour", added[0].Name)
	assert.Equal(t, "2 cups", *added[0].Amount)
	assert.Equal(t, "Pancakes", *added[0].RecipeName)
	assert.Equal(t, recipe.ID.String(), *added[0].RecipeID)
	assert.Equal(t, "a handful of berries", added[3].Name)
	assert.Nil(t, added[3].Amount)

	_, err = svc.AddRecipe(ctx, uuid.New(), recipe.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestAggregateShoppingList(t *testing.T) {
	svc, _, ops := newShoppingService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Replace(ctx, userID, []types.ShoppingListItem{
		{Name: "Salt", Amount: strPtr("1 tsp")},
		{Name: "salt", Amount: strPtr("2 tsp"), IsChecked: true},
		{Name: "Flour", Amount: strPtr("2 cups")},
		{Name: "flour", Amount: strPtr("200 g")},
		{Name: "Milk", Amount: strPtr("1 cup")},
		{Name: "milk", Amount: strPtr("1 cup")},
	})
	require.NoError(t, err)

	groups, err := svc.Aggregate(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Flour", groups[0].Name)
	assert.True(t, groups[0].Mismatch)
	assert.Equal(t, "2 cups", groups[0].DisplayAmount)
	assert.Equal(t, "2 cup", groups[1].DisplayAmount)
	assert.Equal(t, "3 tsp", groups[2].DisplayAmount)
	assert.False(t, groups[2].IsChecked)
	assert.Len(t, groups[2].SourceLineIDs, 2)
	assert.Equal(t, 1, ops["aggregate/mismatch"])
	assert.Equal(t, 2, ops["aggregate/parsed"])

	groups, err = svc.Aggregate(ctx, userID, "metric")
	require.NoError(t, err)
	assert.Equal(t, "480 ml", groups[0].DisplayAmount)
	assert.Equal(t, "480 ml", groups[1].DisplayAmount)
	assert.Equal(t, "15 ml", groups[2].DisplayAmount)

	_, err = svc.Aggregate(ctx, userID, "imperial")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
