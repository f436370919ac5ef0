package domain

import (
	"time"
)

var (
	MessageFailedCreateMenu = "failed to create menu"
	MessageFailedUpdateMenu = "failed to update menu"
	MessageFailedGetMetrics = "failed to get menu item metrics"
)

type (
	MenuItemInput struct {
		RecipeID     uint     `json:"recipe_id" validate:"required,gt=0"`
		Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
		DisplayOrder int      `json:"display_order,omitempty" validate:"omitempty,gte=0"`
		IsAvailable  *bool    `json:"is_available,omitempty"`
	}

	CreateMenuRequest struct {
		RestaurantID uint            `json:"restaurant_id" validate:"required,gt=0"`
		Name         string          `json:"name" validate:"required"`
		Description  string          `json:"description,omitempty"`
		Items        []MenuItemInput `json:"items,omitempty" validate:"omitempty,dive"`
	}

	UpdateMenuRequest struct {
		Name        *string         `json:"name,omitempty"`
		Description *string         `json:"description,omitempty"`
		IsActive    *bool           `json:"is_active,omitempty"`
		Items       []MenuItemInput `json:"items,omitempty" validate:"omitempty,dive"`
	}

	// MenuItemMetricRange bounds a metrics query; nil bounds are unbounded.
	// Only the date component of the bounds is significant.
	MenuItemMetricRange struct {
		StartDate *time.Time
		EndDate   *time.Time
	}

	MenuItemMetricResponse struct {
		AccessDate   string `json:"access_date"`
		ViewCount    int64  `json:"view_count"`
		RecipeID     uint   `json:"recipe_id"`
		RestaurantID uint   `json:"restaurant_id"`
	}
)
