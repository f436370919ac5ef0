package recipe

import (
	"Fooddiddo-Backend/domain"
	"Fooddiddo-Backend/entities"
	"Fooddiddo-Backend/internal/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error)
		GetRecipe(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, limit, offset int) ([]*entities.Recipe, error)
		GetTopRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetRecipeVersions(ctx context.Context, id uint) ([]*entities.RecipeVersion, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
		IncrementViewCount(ctx context.Context, id uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewValidationError("recipe name is required", nil)
	}
	// An omitted ingredient list is fine; an explicitly empty one is not.
	if req.Ingredients != nil && len(req.Ingredients) == 0 {
		return nil, domain.NewValidationError("recipe must have at least one ingredient", nil)
	}
	if err := validateRecipeFields(req.PrepTime, req.CookTime, req.Servings); err != nil {
		return nil, err
	}

	slug, err := s.resolveSlug(ctx, name, 0)
	if err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{
		Name:        name,
		Slug:        slug,
		Description: req.Description,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	version := &entities.RecipeVersion{
		Name:        name,
		Description: req.Description,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
	}

	ingredients := make([]entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, entities.RecipeIngredient{
			IngredientID: ing.IngredientID,
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			Notes:        ing.Notes,
		})
	}

	steps := make([]entities.RecipeStep, 0, len(req.Steps))
	for _, step := range req.Steps {
		steps = append(steps, entities.RecipeStep{
			StepNumber:  step.StepNumber,
			Instruction: step.Instruction,
			ImageURL:    step.ImageURL,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, version, ingredients, steps, req.CategoryIDs, req.TagIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a slug race to a concurrent save. No retry; the caller
			// sees a conflict.
			return nil, domain.NewConflictError("recipe slug already in use", nil)
		}
		return nil, err
	}

	return s.recipeRepository.GetRecipeByID(ctx, recipe.ID)
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("recipe", id)
		}
		return nil, err
	}
	if !recipe.IsActive {
		return nil, domain.NewNotFoundError("recipe", id)
	}
	return recipe, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, limit, offset int) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipes(ctx, limit, offset)
}

func (s *recipeService) GetTopRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetTopRecipes(ctx, limit)
}

func (s *recipeService) GetRecipeVersions(ctx context.Context, id uint) ([]*entities.RecipeVersion, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("recipe", id)
		}
		return nil, err
	}
	return s.recipeRepository.GetRecipeVersions(ctx, id)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("recipe", id)
		}
		return nil, err
	}

	if err := validateRecipeFields(req.PrepTime, req.CookTime, req.Servings); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewValidationError("recipe name cannot be empty", nil)
		}
		slug, err := s.resolveSlug(ctx, name, recipe.ID)
		if err != nil {
			return nil, err
		}
		recipe.Name = name
		recipe.Slug = slug
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.PrepTime != nil {
		recipe.PrepTime = req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = req.CookTime
	}
	if req.Servings != nil {
		recipe.Servings = req.Servings
	}
	if req.Difficulty != nil {
		recipe.Difficulty = *req.Difficulty
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}

	// The snapshot captures the post-patch state of every versioned field.
	var newVersion *entities.RecipeVersion
	if req.VersionNote != nil {
		newVersion = &entities.RecipeVersion{
			Name:        recipe.Name,
			Description: recipe.Description,
			PrepTime:    recipe.PrepTime,
			CookTime:    recipe.CookTime,
			Servings:    recipe.Servings,
			Difficulty:  recipe.Difficulty,
			VersionNote: *req.VersionNote,
		}
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, newVersion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewConflictError("recipe slug already in use", nil)
		}
		return nil, err
	}

	return s.recipeRepository.GetRecipeByID(ctx, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	return s.recipeRepository.SoftDeleteRecipe(ctx, id)
}

func (s *recipeService) IncrementViewCount(ctx context.Context, id uint) error {
	return s.recipeRepository.IncrementViewCount(ctx, id)
}

// resolveSlug derives the base slug from the name and probes counter suffixes
// until one is free or held by excludeID. Best effort only: the unique index
// on recipes.slug is the final authority under concurrent creations.
func (s *recipeService) resolveSlug(ctx context.Context, name string, excludeID uint) (string, error) {
	base := utils.Slugify(name)
	slug := base
	for counter := 1; ; counter++ {
		existing, err := s.recipeRepository.GetRecipeBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return slug, nil
			}
			return "", err
		}
		if existing.ID == excludeID {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func validateRecipeFields(prepTime, cookTime, servings *int) error {
	if prepTime != nil && *prepTime < 0 {
		return domain.NewValidationError("prep time cannot be negative", nil)
	}
	if cookTime != nil && *cookTime < 0 {
		return domain.NewValidationError("cook time cannot be negative", nil)
	}
	if servings != nil && *servings <= 0 {
		return domain.NewValidationError("servings must be greater than zero", nil)
	}
	return nil
}
