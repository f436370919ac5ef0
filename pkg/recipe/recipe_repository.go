package recipe

import (
	"Fooddiddo-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, version *entities.RecipeVersion, ingredients []entities.RecipeIngredient, steps []entities.RecipeStep, categoryIDs, tagIDs []uint) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, newVersion *entities.RecipeVersion) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, limit, offset int) ([]*entities.Recipe, error)
		GetTopRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetRecipeVersions(ctx context.Context, recipeID uint) ([]*entities.RecipeVersion, error)
		SoftDeleteRecipe(ctx context.Context, id uint) error
		IncrementViewCount(ctx context.Context, id uint) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe persists the whole aggregate as one atomic unit: the recipe
// row, the initial version marked current, and the children scoped to that
// version. Any failure rolls the transaction back.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, version *entities.RecipeVersion, ingredients []entities.RecipeIngredient, steps []entities.RecipeStep, categoryIDs, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}

		version.RecipeID = recipe.ID
		version.VersionNumber = 1
		version.IsCurrent = true
		if err := tx.Create(version).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
			ingredients[i].RecipeVersionID = version.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}

		for i := range steps {
			steps[i].RecipeID = recipe.ID
			steps[i].RecipeVersionID = version.ID
		}
		if len(steps) > 0 {
			if err := tx.Create(&steps).Error; err != nil {
				return err
			}
		}

		for _, categoryID := range categoryIDs {
			link := entities.RecipeCategory{RecipeID: recipe.ID, CategoryID: categoryID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}

		for _, tagID := range tagIDs {
			link := entities.RecipeTag{RecipeID: recipe.ID, TagID: tagID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateRecipe writes the mutated recipe row and, when newVersion is given,
// performs the version bookkeeping in the same transaction: the current
// version is demoted, the next number is MAX(version_number)+1 and the new
// snapshot becomes current.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, newVersion *entities.RecipeVersion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newVersion != nil {
			var maxVersion int
			if err := tx.Model(&entities.RecipeVersion{}).
				Where("recipe_id = ?", recipe.ID).
				Select("COALESCE(MAX(version_number), 0)").
				Scan(&maxVersion).Error; err != nil {
				return err
			}

			if err := tx.Model(&entities.RecipeVersion{}).
				Where("recipe_id = ? AND is_current = ?", recipe.ID, true).
				Update("is_current", false).Error; err != nil {
				return err
			}

			newVersion.RecipeID = recipe.ID
			newVersion.VersionNumber = maxVersion + 1
			newVersion.IsCurrent = true
			if err := tx.Create(newVersion).Error; err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Save(recipe).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, limit, offset int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("view_count DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetTopRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("view_count DESC, created_at DESC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeVersions(ctx context.Context, recipeID uint) ([]*entities.RecipeVersion, error) {
	var versions []*entities.RecipeVersion
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("version_number ASC").
		Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *recipeRepository) SoftDeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// IncrementViewCount adds one in a single UPDATE so concurrent requests never
// lose increments.
func (r *recipeRepository) IncrementViewCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
