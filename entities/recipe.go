package entities

import (
	"time"
)

type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	PrepTime    *int   `json:"prep_time,omitempty"`
	CookTime    *int   `json:"cook_time,omitempty"`
	Servings    *int   `json:"servings,omitempty"`
	Difficulty  string `gorm:"size:10" json:"difficulty,omitempty"` // "easy", "medium", "hard"
	ImageURL    string `json:"image_url,omitempty"`
	ViewCount   int64  `gorm:"not null;default:0" json:"view_count"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Steps       []RecipeStep       `gorm:"foreignKey:RecipeID" json:"steps,omitempty"`
	Timestamp
}

// RecipeVersion is an immutable snapshot of the recipe fields. Version numbers
// are a gapless sequence per recipe starting at 1; exactly one row per recipe
// carries is_current at any time.
type RecipeVersion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RecipeID      uint      `gorm:"not null;uniqueIndex:idx_recipe_version,priority:1" json:"recipe_id"`
	VersionNumber int       `gorm:"not null;uniqueIndex:idx_recipe_version,priority:2" json:"version_number"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	PrepTime      *int      `json:"prep_time,omitempty"`
	CookTime      *int      `json:"cook_time,omitempty"`
	Servings      *int      `json:"servings,omitempty"`
	Difficulty    string    `gorm:"size:10" json:"difficulty,omitempty"`
	VersionNote   string    `gorm:"type:text" json:"version_note,omitempty"`
	IsCurrent     bool      `gorm:"not null;default:false" json:"is_current"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Unit      string    `gorm:"size:50" json:"unit,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}

type RecipeIngredient struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	RecipeID        uint    `gorm:"not null;index" json:"recipe_id"`
	RecipeVersionID uint    `gorm:"index" json:"recipe_version_id,omitempty"`
	IngredientID    uint    `gorm:"not null" json:"ingredient_id"`
	Quantity        float64 `gorm:"not null" json:"quantity"`
	Unit            string  `gorm:"size:50;not null" json:"unit"`
	Notes           string  `json:"notes,omitempty"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

type RecipeStep struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RecipeID        uint      `gorm:"not null;index" json:"recipe_id"`
	RecipeVersionID uint      `gorm:"index" json:"recipe_version_id,omitempty"`
	StepNumber      int       `gorm:"not null" json:"step_number"`
	Instruction     string    `gorm:"type:text;not null" json:"instruction"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `gorm:"type:timestamp" json:"created_at"`
}
