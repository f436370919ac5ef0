package catalog

import (
	"Fooddiddo-Backend/domain"
	"Fooddiddo-Backend/entities"
	"Fooddiddo-Backend/internal/utils"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	CatalogService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategory(ctx context.Context, id uint) (*entities.Category, error)

		CreateTag(ctx context.Context, req domain.CreateTagRequest) (*entities.Tag, error)
		GetTags(ctx context.Context) ([]*entities.Tag, error)
		GetTag(ctx context.Context, id uint) (*entities.Tag, error)

		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetIngredient(ctx context.Context, id uint) (*entities.Ingredient, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewValidationError("category name is required", nil)
	}

	category := &entities.Category{
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: req.Description,
	}
	if err := s.catalogRepository.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewConflictError("category already exists", nil)
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.catalogRepository.GetCategories(ctx)
}

func (s *catalogService) GetCategory(ctx context.Context, id uint) (*entities.Category, error) {
	category, err := s.catalogRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("category", id)
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) CreateTag(ctx context.Context, req domain.CreateTagRequest) (*entities.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewValidationError("tag name is required", nil)
	}

	tag := &entities.Tag{
		Name: name,
		Slug: utils.Slugify(name),
	}
	if err := s.catalogRepository.UpsertTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *catalogService) GetTags(ctx context.Context) ([]*entities.Tag, error) {
	return s.catalogRepository.GetTags(ctx)
}

func (s *catalogService) GetTag(ctx context.Context, id uint) (*entities.Tag, error) {
	tag, err := s.catalogRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("tag", id)
		}
		return nil, err
	}
	return tag, nil
}

func (s *catalogService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (*entities.Ingredient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewValidationError("ingredient name is required", nil)
	}

	ingredient := &entities.Ingredient{
		Name: name,
		Unit: req.Unit,
	}
	if err := s.catalogRepository.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *catalogService) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	return s.catalogRepository.GetIngredients(ctx)
}

func (s *catalogService) GetIngredient(ctx context.Context, id uint) (*entities.Ingredient, error) {
	ingredient, err := s.catalogRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("ingredient", id)
		}
		return nil, err
	}
	return ingredient, nil
}
