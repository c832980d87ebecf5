package migration

import (
	"RecipeShare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&entities.User{},
		&entities.Recipe{},
		&entities.Rating{},
		&entities.Review{},
		&entities.Favorite{},
		&entities.Follow{},
		&entities.Collection{},
		&entities.CollectionRecipe{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
