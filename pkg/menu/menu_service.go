package menu

import (
	"Fooddiddo-Backend/domain"
	"Fooddiddo-Backend/entities"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type (
	MenuService interface {
		CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (*entities.Menu, error)
		UpdateMenu(ctx context.Context, id uint, req domain.UpdateMenuRequest) (*entities.Menu, error)
		GetMenusByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Menu, error)
		GetMenuItems(ctx context.Context, menuID uint) ([]*entities.MenuItem, error)
		ViewMenuItem(ctx context.Context, itemID, restaurantID uint) (*entities.MenuItem, error)
		GetMenuItemMetrics(ctx context.Context, menuItemID uint, rng domain.MenuItemMetricRange) ([]domain.MenuItemMetricResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
	}
)

func NewMenuService(menuRepository MenuRepository) MenuService {
	return &menuService{menuRepository: menuRepository}
}

func (s *menuService) CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (*entities.Menu, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewValidationError("menu name is required", nil)
	}
	if req.RestaurantID == 0 {
		return nil, domain.NewValidationError("restaurant id is required", nil)
	}
	if err := validateMenuItems(req.Items); err != nil {
		return nil, err
	}

	menu := &entities.Menu{
		RestaurantID: req.RestaurantID,
		Name:         name,
		Description:  req.Description,
		IsActive:     true,
	}
	items := buildMenuItems(req.Items)

	if err := s.menuRepository.CreateMenu(ctx, menu, items); err != nil {
		return nil, err
	}

	return s.menuRepository.GetMenuByID(ctx, menu.ID)
}

func (s *menuService) UpdateMenu(ctx context.Context, id uint, req domain.UpdateMenuRequest) (*entities.Menu, error) {
	menu, err := s.menuRepository.GetMenuByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("menu", id)
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewValidationError("menu name cannot be empty", nil)
		}
		menu.Name = name
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if err := validateMenuItems(req.Items); err != nil {
		return nil, err
	}

	if err := s.menuRepository.UpdateMenu(ctx, menu, buildMenuItems(req.Items)); err != nil {
		return nil, err
	}

	return s.menuRepository.GetMenuByID(ctx, id)
}

func (s *menuService) GetMenusByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Menu, error) {
	return s.menuRepository.GetMenusByRestaurant(ctx, restaurantID)
}

func (s *menuService) GetMenuItems(ctx context.Context, menuID uint) ([]*entities.MenuItem, error) {
	return s.menuRepository.GetMenuItems(ctx, menuID)
}

// ViewMenuItem returns the item and records the view: item and recipe
// counters plus the daily metric row, all in one transaction.
func (s *menuService) ViewMenuItem(ctx context.Context, itemID, restaurantID uint) (*entities.MenuItem, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("menu item", itemID)
		}
		return nil, err
	}

	if err := s.menuRepository.RecordMenuItemView(ctx, item.ID, item.RecipeID, restaurantID); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *menuService) GetMenuItemMetrics(ctx context.Context, menuItemID uint, rng domain.MenuItemMetricRange) ([]domain.MenuItemMetricResponse, error) {
	metrics, err := s.menuRepository.GetMenuItemMetrics(ctx, menuItemID, rng.StartDate, rng.EndDate)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MenuItemMetricResponse, 0, len(metrics))
	for _, m := range metrics {
		result = append(result, domain.MenuItemMetricResponse{
			AccessDate:   time.Time(m.AccessDate).Format("2006-01-02"),
			ViewCount:    m.ViewCount,
			RecipeID:     m.RecipeID,
			RestaurantID: m.RestaurantID,
		})
	}
	return result, nil
}

func validateMenuItems(items []domain.MenuItemInput) error {
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if seen[item.RecipeID] {
			return domain.NewValidationError("menu cannot contain the same recipe twice", nil)
		}
		seen[item.RecipeID] = true
		if item.Price != nil && *item.Price < 0 {
			return domain.NewValidationError("price cannot be negative", nil)
		}
	}
	return nil
}

func buildMenuItems(inputs []domain.MenuItemInput) []entities.MenuItem {
	items := make([]entities.MenuItem, 0, len(inputs))
	for _, in := range inputs {
		available := true
		if in.IsAvailable != nil {
			available = *in.IsAvailable
		}
		items = append(items, entities.MenuItem{
			RecipeID:     in.RecipeID,
			Price:        in.Price,
			DisplayOrder: in.DisplayOrder,
			IsAvailable:  available,
		})
	}
	return items
}
