package handlers_test

import (
	"Fooddiddo-Backend/entities"
	"Fooddiddo-Backend/internal/api/handlers"
	"Fooddiddo-Backend/internal/api/routes"
	"Fooddiddo-Backend/internal/middleware"
	"Fooddiddo-Backend/internal/utils"
	"Fooddiddo-Backend/pkg/catalog"
	"Fooddiddo-Backend/pkg/jwt"
	"Fooddiddo-Backend/pkg/menu"
	"Fooddiddo-Backend/pkg/recipe"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, jwt.JWTService) {
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
		&entities.Recipe{},
		&entities.RecipeVersion{},
		&entities.RecipeIngredient{},
		&entities.RecipeStep{},
		&entities.RecipeCategory{},
		&entities.RecipeTag{},
		&entities.Restaurant{},
		&entities.Menu{},
		&entities.MenuItem{},
		&entities.MenuItemMetric{},
	))

	utils.InitValidator()
	app := fiber.New()
	jwtService := jwt.NewJWTService()

	config := routes.Config{
		App:            app,
		RecipeHandler:  handlers.NewRecipeHandler(recipe.NewRecipeService(recipe.NewRecipeRepository(db)), utils.Validate),
		MenuHandler:    handlers.NewMenuHandler(menu.NewMenuService(menu.NewMenuRepository(db)), utils.Validate),
		CatalogHandler: handlers.NewCatalogHandler(catalog.NewCatalogService(catalog.NewCatalogRepository(db)), utils.Validate),
		Middleware:     middleware.NewMiddleware(),
		JWTService:     jwtService,
	}
	config.Setup()
	return app, jwtService
}

func TestRecipeRoutes_ListCacheHeader(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/recipes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=3600", resp.Header.Get(fiber.HeaderCacheControl))
}

func TestRecipeRoutes_NotFoundEnvelope(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/recipes/999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Error struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			Timestamp string `json:"timestamp"`
			Path      string `json:"path"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	assert.Equal(t, "/api/v1/recipes/999", envelope.Error.Path)
	assert.NotEmpty(t, envelope.Error.Timestamp)
}

func TestRecipeRoutes_CreateRequiresAuth(t *testing.T) {
	app, jwtService := newTestApp(t)

	payload := `{"name":"Apple Pie"}`

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/recipes", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/api/v1/recipes", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+jwtService.GenerateTokenUser("user-1"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var created entities.Recipe
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "apple-pie", created.Slug)
}

func TestRecipeRoutes_DeleteNoContent(t *testing.T) {
	app, jwtService := newTestApp(t)
	token := jwtService.GenerateTokenUser("user-1")

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/recipes", strings.NewReader(`{"name":"Old Dish"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var created entities.Recipe
	require.NoError(t, json.Unmarshal(body, &created))

	req = httptest.NewRequest(fiber.MethodDelete, "/api/v1/recipes/1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Deleting twice stays 204.
	req = httptest.NewRequest(fiber.MethodDelete, "/api/v1/recipes/1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestValidationErrorEnvelope(t *testing.T) {
	app, jwtService := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/recipes", strings.NewReader(`{"difficulty":"impossible"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+jwtService.GenerateTokenUser("user-1"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "Name")
}
