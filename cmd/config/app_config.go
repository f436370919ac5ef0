package config

import (
	"Fooddiddo-Backend/internal/api/handlers"
	"Fooddiddo-Backend/internal/api/routes"
	"Fooddiddo-Backend/internal/middleware"
	"Fooddiddo-Backend/internal/utils"
	"Fooddiddo-Backend/pkg/catalog"
	"Fooddiddo-Backend/pkg/jwt"
	"Fooddiddo-Backend/pkg/menu"
	"Fooddiddo-Backend/pkg/recipe"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	recipeService := recipe.NewRecipeService(recipeRepository)
	menuService := menu.NewMenuService(menuRepository)
	catalogService := catalog.NewCatalogService(catalogRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		RecipeHandler:  recipeHandler,
		MenuHandler:    menuHandler,
		CatalogHandler: catalogHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
