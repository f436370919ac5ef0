package catalog

import (
	"Fooddiddo-Backend/domain"
	"Fooddiddo-Backend/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (CatalogService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.Ingredient{},
		&entities.Category{},
		&entities.Tag{},
	))
	return NewCatalogService(NewCatalogRepository(db)), db
}

func TestCatalogService_CreateCategory(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	category, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{
		Name:        "Main Courses",
		Description: "hearty dishes",
	})
	require.NoError(t, err)
	assert.Equal(t, "main-courses", category.Slug)

	// Same slug is a conflict, not a duplicate row.
	_, err = service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Main Courses"})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.CodeConflict, apiErr.Code)
}

func TestCatalogService_CreateTag_Idempotent(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	first, err := service.CreateTag(ctx, domain.CreateTagRequest{Name: "vegan"})
	require.NoError(t, err)

	second, err := service.CreateTag(ctx, domain.CreateTagRequest{Name: "vegan"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entities.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCatalogService_Validation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	var apiErr *domain.APIError

	_, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "  "})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.CodeValidationError, apiErr.Code)

	_, err = service.CreateTag(ctx, domain.CreateTagRequest{Name: ""})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.CodeValidationError, apiErr.Code)

	_, err = service.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: ""})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.CodeValidationError, apiErr.Code)
}

func TestCatalogService_Ingredients(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Flour", Unit: "g"})
	require.NoError(t, err)

	fetched, err := service.GetIngredient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flour", fetched.Name)

	_, err = service.GetIngredient(ctx, 999)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	listed, err := service.GetIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
