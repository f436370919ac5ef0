package menu

import (
	"Fooddiddo-Backend/domain"
	"Fooddiddo-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.Recipe{},
		&entities.Restaurant{},
		&entities.Menu{},
		&entities.MenuItem{},
		&entities.MenuItemMetric{},
	))
	return db
}

type menuFixture struct {
	service      MenuService
	db           *gorm.DB
	restaurant   entities.Restaurant
	firstRecipe  entities.Recipe
	secondRecipe entities.Recipe
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	db := newTestDB(t)

	f := &menuFixture{
		service:      NewMenuService(NewMenuRepository(db)),
		db:           db,
		restaurant:   entities.Restaurant{Name: "Trattoria", Slug: "trattoria"},
		firstRecipe:  entities.Recipe{Name: "Margherita", Slug: "margherita", IsActive: true},
		secondRecipe: entities.Recipe{Name: "Tiramisu", Slug: "tiramisu", IsActive: true},
	}
	require.NoError(t, db.Create(&f.restaurant).Error)
	require.NoError(t, db.Create(&f.firstRecipe).Error)
	require.NoError(t, db.Create(&f.secondRecipe).Error)
	return f
}

func floatPtr(v float64) *float64 { return &v }

func TestMenuService_CreateMenu(t *testing.T) {
	f := newMenuFixture(t)
	ctx := context.Background()

	menu, err := f.service.CreateMenu(ctx, domain.CreateMenuRequest{
		RestaurantID: f.restaurant.ID,
		Name:         "Dinner",
		Items: []domain.MenuItemInput{
			{RecipeID: f.firstRecipe.ID, Price: floatPtr(12.5), DisplayOrder: 1},
			{RecipeID: f.secondRecipe.ID, DisplayOrder: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, menu.IsActive)

	items, err := f.service.GetMenuItems(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, f.firstRecipe.ID, items[0].RecipeID)
	assert.True(t, items[0].IsAvailable)
}

func TestMenuService_CreateMenu_Validation(t *testing.T) {
	f := newMenuFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.CreateMenuRequest
	}{
		{
			name: "empty name",
			req:  domain.CreateMenuRequest{RestaurantID: f.restaurant.ID, Name: "  "},
		},
		{
			name: "missing restaurant",
			req:  domain.CreateMenuRequest{Name: "Dinner"},
		},
		{
			name: "duplicate recipe in one menu",
			req: domain.CreateMenuRequest{
				RestaurantID: f.restaurant.ID,
				Name:         "Dinner",
				Items: []domain.MenuItemInput{
					{RecipeID: f.firstRecipe.ID},
					{RecipeID: f.firstRecipe.ID},
				},
			},
		},
		{
			name: "negative price",
			req: domain.CreateMenuRequest{
				RestaurantID: f.restaurant.ID,
				Name:         "Dinner",
				Items:        []domain.MenuItemInput{{RecipeID: f.firstRecipe.ID, Price: floatPtr(-1)}},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := f.service.CreateMenu(ctx, testCase.req)
			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, domain.CodeValidationError, apiErr.Code)
		})
	}

	// Rejected requests persist nothing.
	var count int64
	require.NoError(t, f.db.Model(&entities.Menu{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMenuService_UpdateMenu_ItemUpsert(t *testing.T) {
	f := newMenuFixture(t)
	ctx := context.Background()

	menu, err := f.service.CreateMenu(ctx, domain.CreateMenuRequest{
		RestaurantID: f.restaurant.ID,
		Name:         "Dinner",
		Items: []domain.MenuItemInput{
			{RecipeID: f.firstRecipe.ID, Price: floatPtr(10), DisplayOrder: 1},
			{RecipeID: f.secondRecipe.ID, Price: floatPtr(6), DisplayOrder: 2},
		},
	})
	require.NoError(t, err)

	// Only the first item is mentioned; the second must stay untouched.
	_, err = f.service.UpdateMenu(ctx, menu.ID, domain.UpdateMenuRequest{
		Items: []domain.MenuItemInput{
			{RecipeID: f.firstRecipe.ID, Price: floatPtr(11.5), DisplayOrder: 1},
		},
	})
	require.NoError(t, err)

	var items []entities.MenuItem
	require.NoError(t, f.db.Where("menu_id = ?", menu.ID).Order("display_order ASC").Find(&items).Error)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Price)
	assert.Equal(t, 11.5, *items[0].Price)
	require.NotNil(t, items[1].Price)
	assert.Equal(t, 6.0, *items[1].Price)
}

func TestMenuService_UpdateMenu_NotFound(t *testing.T) {
	f := newMenuFixture(t)

	name := "Lunch"
	_, err := f.service.UpdateMenu(context.Background(), 999, domain.UpdateMenuRequest{Name: &name})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestMenuService_ViewMenuItem_SameDayUpsert(t *testing.T) {
	f := newMenuFixture(t)
	ctx := context.Background()

	menu, err := f.service.CreateMenu(ctx, domain.CreateMenuRequest{
		RestaurantID: f.restaurant.ID,
		Name:         "Dinner",
		Items:        []domain.MenuItemInput{{RecipeID: f.firstRecipe.ID}},
	})
	require.NoError(t, err)

	items, err := f.service.GetMenuItems(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	itemID := items[0].ID

	for i := 0; i < 2; i++ {
		_, err := f.service.ViewMenuItem(ctx, itemID, f.restaurant.ID)
		require.NoError(t, err)
	}

	// One metric row for the day, counted twice.
	var metrics []entities.MenuItemMetric
	require.NoError(t, f.db.Where("menu_item_id = ?", itemID).Find(&metrics).Error)
	require.Len(t, metrics, 1)
	assert.EqualValues(t, 2, metrics[0].ViewCount)
	assert.Equal(t, f.firstRecipe.ID, metrics[0].RecipeID)
	assert.Equal(t, f.restaurant.ID, metrics[0].RestaurantID)

	// Both running counters moved with it.
	var item entities.MenuItem
	require.NoError(t, f.db.Where("id = ?", itemID).First(&item).Error)
	assert.EqualValues(t, 2, item.ViewCount)

	var recipe entities.Recipe
	require.NoError(t, f.db.Where("id = ?", f.firstRecipe.ID).First(&recipe).Error)
	assert.EqualValues(t, 2, recipe.ViewCount)
}

func TestMenuService_ViewMenuItem_NotFound(t *testing.T) {
	f := newMenuFixture(t)

	_, err := f.service.ViewMenuItem(context.Background(), 999, f.restaurant.ID)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestMenuService_GetMenuItemMetrics_Range(t *testing.T) {
	f := newMenuFixture(t)
	ctx := context.Background()

	menu, err := f.service.CreateMenu(ctx, domain.CreateMenuRequest{
		RestaurantID: f.restaurant.ID,
		Name:         "Dinner",
		Items:        []domain.MenuItemInput{{RecipeID: f.firstRecipe.ID}},
	})
	require.NoError(t, err)

	items, err := f.service.GetMenuItems(ctx, menu.ID)
	require.NoError(t, err)
	itemID := items[0].ID

	days := []string{"2026-08-01", "2026-08-02", "2026-08-03"}
	for i, day := range days {
		parsed, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		require.NoError(t, f.db.Create(&entities.MenuItemMetric{
			MenuItemID:   itemID,
			RecipeID:     f.firstRecipe.ID,
			RestaurantID: f.restaurant.ID,
			AccessDate:   datatypes.Date(parsed),
			ViewCount:    int64(i + 1),
		}).Error)
	}

	start, _ := time.Parse("2006-01-02", "2026-08-01")
	end, _ := time.Parse("2006-01-02", "2026-08-02")

	metrics, err := f.service.GetMenuItemMetrics(ctx, itemID, domain.MenuItemMetricRange{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	// Bounds are inclusive, newest first.
	assert.Equal(t, "2026-08-02", metrics[0].AccessDate)
	assert.Equal(t, "2026-08-01", metrics[1].AccessDate)
	assert.EqualValues(t, 2, metrics[0].ViewCount)

	// Unbounded query returns everything.
	all, err := f.service.GetMenuItemMetrics(ctx, itemID, domain.MenuItemMetricRange{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
