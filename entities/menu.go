package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Timestamp
}

type Menu struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Items      []MenuItem  `gorm:"foreignKey:MenuID" json:"items,omitempty"`
	Timestamp
}

type MenuItem struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	MenuID       uint     `gorm:"not null;uniqueIndex:idx_menu_recipe,priority:1" json:"menu_id"`
	RecipeID     uint     `gorm:"not null;uniqueIndex:idx_menu_recipe,priority:2" json:"recipe_id"`
	Price        *float64 `json:"price,omitempty"`
	DisplayOrder int      `gorm:"not null;default:0" json:"display_order"`
	IsAvailable  bool     `gorm:"not null;default:true" json:"is_available"`
	ViewCount    int64    `gorm:"not null;default:0" json:"view_count"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}

// MenuItemMetric accumulates views per menu item and day. The recipe and
// restaurant ids are denormalized for range queries. One row per
// (menu_item_id, access_date); same-day views increment view_count in place.
type MenuItemMetric struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	MenuItemID   uint           `gorm:"not null;uniqueIndex:idx_item_date,priority:1" json:"menu_item_id"`
	RecipeID     uint           `gorm:"not null" json:"recipe_id"`
	RestaurantID uint           `gorm:"not null;index" json:"restaurant_id"`
	AccessDate   datatypes.Date `gorm:"type:date;not null;uniqueIndex:idx_item_date,priority:2" json:"access_date"`
	ViewCount    int64          `gorm:"not null;default:1" json:"view_count"`
	CreatedAt    time.Time      `gorm:"type:timestamp" json:"created_at"`
}
