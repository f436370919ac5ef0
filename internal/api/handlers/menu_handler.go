package handlers

import (
	"Fooddiddo-Backend/domain"
	"Fooddiddo-Backend/internal/api/presenters"
	"Fooddiddo-Backend/pkg/menu"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		CreateMenu(c *fiber.Ctx) error
		UpdateMenu(c *fiber.Ctx) error
		GetMenusByRestaurant(c *fiber.Ctx) error
		GetMenuItems(c *fiber.Ctx) error
		GetMenuItemDetail(c *fiber.Ctx) error
		GetMenuItemMetrics(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) CreateMenu(c *fiber.Ctx) error {
	req := new(domain.CreateMenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedBodyRequest, nil))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedCreateMenu, validationDetails(err)))
	}

	res, err := h.menuService.CreateMenu(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *menuHandler) UpdateMenu(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	req := new(domain.UpdateMenuRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedBodyRequest, nil))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedUpdateMenu, validationDetails(err)))
	}

	res, err := h.menuService.UpdateMenu(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *menuHandler) GetMenusByRestaurant(c *fiber.Ctx) error {
	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.menuService.GetMenusByRestaurant(c.Context(), restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	menuID, err := paramID(c, "menuId")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.menuService.GetMenuItems(c.Context(), menuID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

// GetMenuItemDetail returns the item and records the view against the
// restaurant in the path.
func (h *menuHandler) GetMenuItemDetail(c *fiber.Ctx) error {
	restaurantID, err := paramID(c, "restaurantId")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	itemID, err := paramID(c, "itemId")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.menuService.ViewMenuItem(c.Context(), itemID, restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *menuHandler) GetMenuItemMetrics(c *fiber.Ctx) error {
	menuItemID, err := paramID(c, "menuItemId")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	rng := domain.MenuItemMetricRange{}
	if raw := c.Query("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedGetMetrics, map[string]string{"startDate": "expected YYYY-MM-DD"}))
		}
		rng.StartDate = &parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedGetMetrics, map[string]string{"endDate": "expected YYYY-MM-DD"}))
		}
		rng.EndDate = &parsed
	}

	res, err := h.menuService.GetMenuItemMetrics(c.Context(), menuItemID, rng)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
