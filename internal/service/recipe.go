package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipefy/backend/internal/model"
	"github.com/recipefy/backend/internal/types"
)

// RecipeService handles recipe operations. Every query is scoped to the
// owning user.
type RecipeService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, log *zap.Logger) *RecipeService {
	return &RecipeService{db: db, log: log}
}

func preloadChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("Instructions", func(tx *gorm.DB) *gorm.DB { return tx.Order("step_number") }).
		Preload("Tags")
}

// ListRecipes lists the user's recipes, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]*model.Recipe, error) {
	var recipes []*model.Recipe
	err := preloadChildren(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := preloadChildren(s.db.WithContext(ctx)).
		First(&recipe, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe %s: %w", id, err)
	}
	return &recipe, nil
}

// CreateRecipe creates a new recipe together with its ingredients, steps and tags.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.RecipeRequest) (*model.Recipe, error) {
	recipe := &model.Recipe{UserID: userID}
	applyFields(recipe, &req.RecipeFields)
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}
	children, err := buildChildren(req)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = children.ingredients
	recipe.Instructions = children.instructions
	recipe.Tags = children.tags

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	s.log.Info("recipe created", zap.String("recipe_id", recipe.ID.String()), zap.String("user_id", userID.String()))
	return s.GetRecipe(ctx, userID, recipe.ID)
}

// UpdateRecipe overwrites a recipe's fields and replaces its child rows.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, req *types.RecipeRequest) (*model.Recipe, error) {
	children, err := buildChildren(req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		if err := tx.First(&recipe, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		applyFields(&recipe, &req.RecipeFields)
		if err := validateRecipe(&recipe); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&recipe).Error; err != nil {
			return err
		}

		for _, child := range []interface{}{&model.Ingredient{}, &model.InstructionStep{}, &model.RecipeTag{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		for i := range children.ingredients {
			children.ingredients[i].RecipeID = id
		}
		for i := range children.instructions {
			children.instructions[i].RecipeID = id
		}
		for i := range children.tags {
			children.tags[i].RecipeID = id
		}
		if len(children.ingredients) > 0 {
			if err := tx.Create(&children.ingredients).Error; err != nil {
				return err
			}
		}
		if len(children.instructions) > 0 {
			if err := tx.Create(&children.instructions).Error; err != nil {
				return err
			}
		}
		if len(children.tags) > 0 {
			if err := tx.Create(&children.tags).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) || errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("update recipe %s: %w", id, err)
	}
	return s.GetRecipe(ctx, userID, id)
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Recipe{})
	if result.Error != nil {
		return fmt.Errorf("delete recipe %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// SetMediaImage records the stored image URL of a recipe.
func (s *RecipeService) SetMediaImage(ctx context.Context, userID, id uuid.UUID, url string) (*model.Recipe, error) {
	result := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("media_image_url", url)
	if result.Error != nil {
		return nil, fmt.Errorf("set media for recipe %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}
	return s.GetRecipe(ctx, userID, id)
}

func applyFields(r *model.Recipe, f *types.RecipeFields) {
	r.Title = strings.TrimSpace(f.Title)
	r.Description = f.Description
	r.MealType = f.MealType
	r.Difficulty = f.Difficulty
	r.PrepTime = f.PrepTime
	r.CookTime = f.CookTime
	r.TotalTime = f.TotalTime
	r.Servings = strings.TrimSpace(f.Servings)
	r.NutritionCalories = f.NutritionCalories
	r.NutritionProtein = f.NutritionProtein
	r.NutritionCarbs = f.NutritionCarbs
	r.NutritionFat = f.NutritionFat
	r.ChefNotes = f.ChefNotes
	r.SourcePlatform = strings.TrimSpace(f.SourcePlatform)
	r.SourceURL = strings.TrimSpace(f.SourceURL)
	r.SourceDomain = f.SourceDomain
	if f.ImportedAt != nil {
		r.ImportedAt = f.ImportedAt.UTC()
	}
	r.MediaVideoURL = f.MediaVideoURL
	r.MediaImageURL = f.MediaImageURL
	r.MediaLocalPath = f.MediaLocalPath
	r.IsFavorite = f.IsFavorite
}

func validateRecipe(r *model.Recipe) error {
	switch {
	case r.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case r.SourcePlatform == "":
		return fmt.Errorf("%w: source_platform is required", ErrInvalidInput)
	case r.SourceURL == "":
		return fmt.Errorf("%w: source_url is required", ErrInvalidInput)
	}
	return nil
}

type recipeChildren struct {
	ingredients  []model.Ingredient
	instructions []model.InstructionStep
	tags         []model.RecipeTag
}

func buildChildren(req *types.RecipeRequest) (recipeChildren, error) {
	var c recipeChildren
	for i, ing := range req.Ingredients {
		line := strings.TrimSpace(ing.Line)
		if line == "" {
			return c, fmt.Errorf("%w: ingredient %d has no line", ErrInvalidInput, i+1)
		}
		c.ingredients = append(c.ingredients, model.Ingredient{
			Position: i,
			Line:     line,
			Amount:   strings.TrimSpace(ing.Amount),
			Name:     strings.TrimSpace(ing.Name),
		})
	}
	for i, step := range req.Instructions {
		n := step.StepNumber
		if n <= 0 {
			n = i + 1
		}
		c.instructions = append(c.instructions, model.InstructionStep{StepNumber: n, Text: step.Text})
	}
	for _, tag := range req.Tags {
		if name := strings.TrimSpace(tag); name != "" {
			c.tags = append(c.tags, model.RecipeTag{Name: name})
		}
	}
	return c, nil
}

// ToRecipeResponse converts a stored recipe to its wire form.
func ToRecipeResponse(r *model.Recipe) types.Recipe {
	out := types.Recipe{
		ID: r.ID,
		RecipeFields: types.RecipeFields{
			Title:             r.Title,
			Description:       r.Description,
			MealType:          r.MealType,
			Difficulty:        r.Difficulty,
			PrepTime:          r.PrepTime,
			CookTime:          r.CookTime,
			TotalTime:         r.TotalTime,
			Servings:          r.Servings,
			NutritionCalories: r.NutritionCalories,
			NutritionProtein:  r.NutritionProtein,
			NutritionCarbs:    r.NutritionCarbs,
			NutritionFat:      r.NutritionFat,
			ChefNotes:         r.ChefNotes,
			SourcePlatform:    r.SourcePlatform,
			SourceURL:         r.SourceURL,
			SourceDomain:      r.SourceDomain,
			ImportedAt:        timePtr(r.ImportedAt),
			MediaVideoURL:     r.MediaVideoURL,
			MediaImageURL:     r.MediaImageURL,
			MediaLocalPath:    r.MediaLocalPath,
			IsFavorite:        r.IsFavorite,
		},
		Ingredients:  make([]types.Ingredient, 0, len(r.Ingredients)),
		Instructions: make([]types.InstructionStep, 0, len(r.Instructions)),
		Tags:         make([]string, 0, len(r.Tags)),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for _, ing := range r.Ingredients {
		id := ing.ID
		out.Ingredients = append(out.Ingredients, types.Ingredient{ID: &id, Line: ing.Line, Amount: ing.Amount, Name: ing.Name})
	}
	for _, step := range r.Instructions {
		id := step.ID
		out.Instructions = append(out.Instructions, types.InstructionStep{ID: &id, StepNumber: step.StepNumber, Text: step.Text})
	}
	for _, tag := range r.Tags {
		out.Tags = append(out.Tags, tag.Name)
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
