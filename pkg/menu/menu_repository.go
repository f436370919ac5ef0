package menu

import (
	"Fooddiddo-Backend/entities"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MenuRepository interface {
		CreateMenu(ctx context.Context, menu *entities.Menu, items []entities.MenuItem) error
		UpdateMenu(ctx context.Context, menu *entities.Menu, items []entities.MenuItem) error
		GetMenuByID(ctx context.Context, id uint) (*entities.Menu, error)
		GetMenusByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Menu, error)
		GetMenuItems(ctx context.Context, menuID uint) ([]*entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id uint) (*entities.MenuItem, error)
		RecordMenuItemView(ctx context.Context, menuItemID, recipeID, restaurantID uint) error
		GetMenuItemMetrics(ctx context.Context, menuItemID uint, startDate, endDate *time.Time) ([]*entities.MenuItemMetric, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenu(ctx context.Context, menu *entities.Menu, items []entities.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(menu).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].MenuID = menu.ID
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateMenu saves the menu row and upserts the given items on
// (menu_id, recipe_id). Items not in the list are left untouched.
func (r *menuRepository) UpdateMenu(ctx context.Context, menu *entities.Menu, items []entities.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(menu).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].MenuID = menu.ID
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "menu_id"}, {Name: "recipe_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"price", "display_order", "is_available", "updated_at"}),
			}).Create(&items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *menuRepository) GetMenuByID(ctx context.Context, id uint) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("id = ?", id).
		First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) GetMenusByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("created_at DESC").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) GetMenuItems(ctx context.Context, menuID uint) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("menu_id = ? AND is_available = ?", menuID, true).
		Order("display_order ASC, created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id uint) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RecordMenuItemView applies the three effects of a view as one atomic unit:
// both counters are bumped with single-statement increments and the daily
// metric row is inserted or incremented on (menu_item_id, access_date).
// Dates are UTC, date-only.
func (r *menuRepository) RecordMenuItemView(ctx context.Context, menuItemID, recipeID, restaurantID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.MenuItem{}).
			Where("id = ?", menuItemID).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipeID).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
			return err
		}

		metric := entities.MenuItemMetric{
			MenuItemID:   menuItemID,
			RecipeID:     recipeID,
			RestaurantID: restaurantID,
			AccessDate:   datatypes.Date(time.Now().UTC()),
			ViewCount:    1,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "menu_item_id"}, {Name: "access_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"view_count": gorm.Expr("view_count + ?", 1)}),
		}).Create(&metric).Error
	})
}

func (r *menuRepository) GetMenuItemMetrics(ctx context.Context, menuItemID uint, startDate, endDate *time.Time) ([]*entities.MenuItemMetric, error) {
	query := r.db.WithContext(ctx).Where("menu_item_id = ?", menuItemID)
	if startDate != nil {
		query = query.Where("access_date >= ?", datatypes.Date(*startDate))
	}
	if endDate != nil {
		query = query.Where("access_date <= ?", datatypes.Date(*endDate))
	}

	var metrics []*entities.MenuItemMetric
	if err := query.Order("access_date DESC").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}
