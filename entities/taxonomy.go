package entities

import (
	"time"
)

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`
}

type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:255;not null" json:"slug"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}

type RecipeCategory struct {
	RecipeID   uint `gorm:"primaryKey" json:"recipe_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}

func (RecipeCategory) TableName() string {
	return "recipe_categories"
}

type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey" json:"recipe_id"`
	TagID    uint `gorm:"primaryKey" json:"tag_id"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
