package migration

import (
	"Fooddiddo-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate in foreign-key order.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
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
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
