package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipefy/backend/internal/quantity"
	"github.com/recipefy/backend/internal/types"
)

type shoppingItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Amount     *string   `json:"amount"`
	IsChecked  bool      `json:"is_checked"`
	RecipeID   *string   `json:"recipe_id"`
	RecipeName *string   `json:"recipe_name"`
}

func TestShoppingListSync(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, uuid.New())

	var items []shoppingItem
	rr := s.do(t, http.MethodGet, "/api/v1/shopping-list", token, nil, &items)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, items)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"name": " Milk ", "amount": "1 cup"},
			{"name": "", "amount": "2"},
			{"name": "Eggs", "amount": "  ", "is_checked": true},
		},
	}
	rr = s.do(t, http.MethodPut, "/api/v1/shopping-list", token, body, &items)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Nil(t, items[1].Amount)
	assert.True(t, items[1].IsChecked)

	rr = s.do(t, http.MethodGet, "/api/v1/shopping-list", token, nil, &items)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, items, 2)
	assert.Equal(t, "Eggs", items[1].Name)

	rr = s.do(t, http.MethodPut, "/api/v1/shopping-list", token, "not an object", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestShoppingListAddRecipeAndAggregate(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.token(t, uuid.New())

	var recipe types.Recipe
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/recipes", token, pancakeBody(), &recipe).Code)

	var added []shoppingItem
	rr := s.do(t, http.MethodPost, "/api/v1/shopping-list/recipes/"+recipe.ID.String(), token, nil, &added)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Len(t, added, 3)
	assert.Equal(t, "2 cups", *added[0].Amount)
	assert.Equal(t, "Pancakes", *added[0].RecipeName)

	rr = s.do(t, http.MethodPost, "/api/v1/shopping-list/recipes/"+recipe.ID.String(), token, nil, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var groups []quantity.ShoppingAggregate
	rr = s.do(t, http.MethodGet, "/api/v1/shopping-list/aggregate", token, nil, &groups)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, groups, 3)
	assert.Equal(t, "butter", groups[0].Name)
	assert.Equal(t, "16 oz", groups[0].DisplayAmount)
	assert.Equal(t, "4 cups", groups[1].DisplayAmount)
	assert.Len(t, groups[1].SourceLineIDs, 2)
	assert.Equal(t, "to taste", groups[2].DisplayAmount)

	rr = s.do(t, http.MethodGet, "/api/v1/shopping-list/aggregate?units=metric", token, nil, &groups)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "454 g", groups[0].DisplayAmount)
	assert.Equal(t, "960 ml", groups[1].DisplayAmount)

	rr = s.do(t, http.MethodGet, "/api/v1/shopping-list/aggregate?units=imperial", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/v1/shopping-list/recipes/"+uuid.NewString(), token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
