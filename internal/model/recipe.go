package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a stored recipe. Servings is free text such as "4" or
// "4 servings"; scaling reads its leading number.
type Recipe struct {
	ID                uuid.UUID         `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"-"`
	UserID            uuid.UUID         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title             string            `gorm:"size:255;not null" json:"title"`
	Description       string            `gorm:"type:text" json:"description"`
	MealType          string            `gorm:"size:50" json:"meal_type"`
	Difficulty        string            `gorm:"size:50" json:"difficulty"`
	PrepTime          string            `gorm:"size:50" json:"prep_time"`
	CookTime          string            `gorm:"size:50" json:"cook_time"`
	TotalTime         string            `gorm:"size:50" json:"total_time"`
	Servings          string            `gorm:"size:50" json:"servings"`
	NutritionCalories string            `gorm:"size:50" json:"nutrition_calories"`
	NutritionProtein  string            `gorm:"size:50" json:"nutrition_protein"`
	NutritionCarbs    string            `gorm:"size:50" json:"nutrition_carbs"`
	NutritionFat      string            `gorm:"size:50" json:"nutrition_fat"`
	ChefNotes         string            `gorm:"type:text" json:"chef_notes"`
	SourcePlatform    string            `gorm:"size:50" json:"source_platform"`
	SourceURL         string            `gorm:"size:2048" json:"source_url"`
	SourceDomain      string            `gorm:"size:255" json:"source_domain"`
	ImportedAt        time.Time         `json:"imported_at"`
	MediaVideoURL     string            `gorm:"size:2048" json:"media_video_url"`
	MediaImageURL     string            `gorm:"size:2048" json:"media_image_url"`
	MediaLocalPath    string            `gorm:"size:1024" json:"media_local_path"`
	IsFavorite        bool              `gorm:"not null;default:false" json:"is_favorite"`
	Ingredients       []Ingredient      `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Instructions      []InstructionStep `gorm:"constraint:OnDelete:CASCADE" json:"instructions"`
	Tags              []RecipeTag       `gorm:"constraint:OnDelete:CASCADE" json:"tags"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.ImportedAt.IsZero() {
		r.ImportedAt = time.Now().UTC()
	}
	return nil
}

// Ingredient is one ingredient line of a recipe. Line is the text as
// imported; Amount and Name are its optional structured parts.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	Position int       `gorm:"not null;default:0" json:"-"`
	Line     string    `gorm:"type:text;not null" json:"line"`
	Amount   string    `gorm:"size:100" json:"amount"`
	Name     string    `gorm:"size:255" json:"name"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type InstructionStep struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	StepNumber int       `gorm:"not null" json:"step_number"`
	Text       string    `gorm:"type:text;not null" json:"text"`
}

func (s *InstructionStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type RecipeTag struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	Name     string    `gorm:"size:100;not null" json:"name"`
}

func (t *RecipeTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
