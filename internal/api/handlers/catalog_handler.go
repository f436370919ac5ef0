package handlers

import (
	"Fooddiddo-Backend/domain"
	"Fooddiddo-Backend/internal/api/presenters"
	"Fooddiddo-Backend/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetCategoryDetail(c *fiber.Ctx) error
		CreateTag(c *fiber.Ctx) error
		GetTags(c *fiber.Ctx) error
		GetTagDetail(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetIngredientDetail(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedBodyRequest, nil))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedCreateCategory, validationDetails(err)))
	}

	res, err := h.catalogService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) GetCategoryDetail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.catalogService.GetCategory(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) CreateTag(c *fiber.Ctx) error {
	req := new(domain.CreateTagRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedBodyRequest, nil))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedCreateTag, validationDetails(err)))
	}

	res, err := h.catalogService.CreateTag(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *catalogHandler) GetTags(c *fiber.Ctx) error {
	res, err := h.catalogService.GetTags(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) GetTagDetail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.catalogService.GetTag(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.CreateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedBodyRequest, nil))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.NewValidationError(domain.MessageFailedCreateIngredient, validationDetails(err)))
	}

	res, err := h.catalogService.CreateIngredient(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *catalogHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.catalogService.GetIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) GetIngredientDetail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.catalogService.GetIngredient(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
