package types

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is the wire form of one ingredient line.
type Ingredient struct {
	ID     *uuid.UUID `json:"id,omitempty"`
	Line   string     `json:"line" binding:"required"`
	Amount string     `json:"amount"`
	Name   string     `json:"name"`
}

// InstructionStep is the wire form of one step. A zero StepNumber is
// replaced by the step's 1-based position.
type InstructionStep struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	StepNumber int        `json:"step_number"`
	Text       string     `json:"text" binding:"required"`
}

// RecipeFields are the scalar recipe attributes shared by requests and
// responses.
type RecipeFields struct {
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	MealType          string     `json:"meal_type"`
	Difficulty        string     `json:"difficulty"`
	PrepTime          string     `json:"prep_time"`
	CookTime          string     `json:"cook_time"`
	TotalTime         string     `json:"total_time"`
	Servings          string     `json:"servings"`
	NutritionCalories string     `json:"nutrition_calories"`
	NutritionProtein  string     `json:"nutrition_protein"`
	NutritionCarbs    string     `json:"nutrition_carbs"`
	NutritionFat      string     `json:"nutrition_fat"`
	ChefNotes         string     `json:"chef_notes"`
	SourcePlatform    string     `json:"source_platform" binding:"required"`
	SourceURL         string     `json:"source_url" binding:"required"`
	SourceDomain      string     `json:"source_domain"`
	ImportedAt        *time.Time `json:"imported_at"`
	MediaVideoURL     string     `json:"media_video_url"`
	MediaImageURL     string     `json:"media_image_url"`
	MediaLocalPath    string     `json:"media_local_path"`
	IsFavorite        bool       `json:"is_favorite"`
}

// RecipeRequest is the body of recipe create and update calls. Updates
// replace all child collections.
type RecipeRequest struct {
	RecipeFields
	Ingredients  []Ingredient      `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	Tags         []string          `json:"tags"`
}

// Recipe is the response form of a stored recipe.
type Recipe struct {
	ID uuid.UUID `json:"id"`
	RecipeFields
	Ingredients  []Ingredient      `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	Tags         []string          `json:"tags"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// IngredientView is an ingredient rendered for a serving count and unit
// system. DisplayAmount equals Amount when nothing could be applied.
type IngredientView struct {
	Line          string `json:"line"`
	Name          string `json:"name"`
	Amount        string `json:"amount"`
	DisplayAmount string `json:"display_amount"`
}

// RecipeView is a recipe with scaled and converted ingredient amounts.
type RecipeView struct {
	Recipe
	BaseServings *float64         `json:"base_servings"`
	Servings     *float64         `json:"target_servings"`
	Units        string           `json:"units"`
	Ingredients  []IngredientView `json:"ingredients"`
}
