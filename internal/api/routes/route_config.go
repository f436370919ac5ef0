package routes

import (
	"Fooddiddo-Backend/internal/api/handlers"
	"Fooddiddo-Backend/internal/middleware"
	"Fooddiddo-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	RecipeHandler  handlers.RecipeHandler
	MenuHandler    handlers.MenuHandler
	CatalogHandler handlers.CatalogHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Menus()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.Middleware.CacheControl(3600), c.RecipeHandler.GetRecipes)
		recipes.Get("/top", c.Middleware.CacheControl(3600), c.RecipeHandler.GetTopRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Get("/:id/versions", c.RecipeHandler.GetRecipeVersions)
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Menus() {
	menus := c.App.Group("/api/v1/menus")
	{
		menus.Get("/restaurants/:restaurantId", c.Middleware.CacheControl(3600), c.MenuHandler.GetMenusByRestaurant)
		menus.Get("/restaurants/:restaurantId/items/:itemId", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.Middleware.CacheControl(1800), c.MenuHandler.GetMenuItemDetail)
		menus.Get("/items/:menuItemId/metrics", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.GetMenuItemMetrics)
		menus.Get("/:menuId/items", c.Middleware.CacheControl(3600), c.MenuHandler.GetMenuItems)
		menus.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.CreateMenu)
		menus.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.UpdateMenu)
	}
}

func (c *Config) Catalog() {
	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.Middleware.CacheControl(3600), c.CatalogHandler.GetCategories)
		categories.Get("/:id", c.CatalogHandler.GetCategoryDetail)
		categories.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CatalogHandler.CreateCategory)
	}

	tags := c.App.Group("/api/v1/tags")
	{
		tags.Get("", c.Middleware.CacheControl(3600), c.CatalogHandler.GetTags)
		tags.Get("/:id", c.CatalogHandler.GetTagDetail)
		tags.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CatalogHandler.CreateTag)
	}

	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.Middleware.CacheControl(3600), c.CatalogHandler.GetIngredients)
		ingredients.Get("/:id", c.CatalogHandler.GetIngredientDetail)
		ingredients.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CatalogHandler.CreateIngredient)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
