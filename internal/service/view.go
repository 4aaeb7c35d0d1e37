package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/recipefy/backend/internal/metrics"
	"github.com/recipefy/backend/internal/quantity"
	"github.com/recipefy/backend/internal/types"
)

// UnitsOriginal asks for amounts in the units they were written in.
const UnitsOriginal = "original"

// RecipeViewService renders a recipe's ingredient amounts for a serving
// count and measurement system without persisting anything.
type RecipeViewService struct {
	recipes  *RecipeService
	settings *SettingsService
	metrics  QuantityRecorder
}

func NewRecipeViewService(recipes *RecipeService, settings *SettingsService, recorder QuantityRecorder) *RecipeViewService {
	return &RecipeViewService{recipes: recipes, settings: settings, metrics: recorder}
}

// View scales each ingredient from the recipe's own servings to servings
// (nil keeps the base) and converts it to units. An empty units falls back to
// the user's stored preference.
func (s *RecipeViewService) View(ctx context.Context, userID, id uuid.UUID, servings *float64, units string) (*types.RecipeView, error) {
	if servings != nil && (math.IsNaN(*servings) || math.IsInf(*servings, 0) || *servings <= 0) {
		return nil, fmt.Errorf("%w: servings must be a positive number", ErrInvalidInput)
	}

	units = strings.ToLower(strings.TrimSpace(units))
	if units == "" {
		prefs, err := s.settings.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		units = prefs.UnitPreference
	}
	system, err := resolveUnits(units)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	view := &types.RecipeView{
		Recipe:      ToRecipeResponse(recipe),
		Units:       units,
		Ingredients: make([]types.IngredientView, 0, len(recipe.Ingredients)),
	}

	var base float64
	if q, ok := quantity.ParseAmount(recipe.Servings); ok && q.Value > 0 {
		base = q.Value
		view.BaseServings = &base
	}
	scale := servings != nil && base > 0
	if scale {
		view.Servings = servings
	} else if view.BaseServings != nil {
		view.Servings = view.BaseServings
	}

	for _, ing := range recipe.Ingredients {
		display := ing.Amount
		if display != "" {
			if _, ok := quantity.ParseAmount(display); ok {
				record(s.metrics, "view", metrics.OutcomeParsed)
			} else {
				record(s.metrics, "view", metrics.OutcomeOpaque)
			}
			if scale {
				display = quantity.ScaleAmount(display, *servings, base)
			}
			if system != "" {
				display = quantity.ConvertAmount(display, system)
			}
		}
		view.Ingredients = append(view.Ingredients, types.IngredientView{
			Line:          ing.Line,
			Name:          ing.Name,
			Amount:        ing.Amount,
			DisplayAmount: display,
		})
	}
	return view, nil
}

// resolveUnits maps a units parameter to a target system. "original" yields
// the empty system, meaning no conversion.
func resolveUnits(units string) (quantity.System, error) {
	if units == UnitsOriginal {
		return "", nil
	}
	system, ok := quantity.ParseSystem(units)
	if !ok {
		return "", fmt.Errorf("%w: units must be metric, us or original", ErrInvalidInput)
	}
	return system, nil
}
