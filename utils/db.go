package utils

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/foodgram-ru/foodgram-backend/model"
)

// GetDBConnection connects to the database named by DB_NAME using the
// connection parameters from the environment.
func GetDBConnection() (*gorm.DB, error) {
	return GetCustomizedConnection(os.Getenv("DB_NAME"))
}

func GetCustomizedConnection(dbName string) (*gorm.DB, error) {
	sslmode := "require"
	if dbName == "testing" {
		sslmode = "prefer"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		dbName,
		os.Getenv("DB_PORT"),
		sslmode,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// DBSetupAndMigration creates or updates the schema for every entity the
// API serves. Called once on server startup.
func DBSetupAndMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Product{},
		&model.Recipe{},
		&model.IngredientLine{},
		&model.UserRecipeRelation{},
		&model.Follow{},
	)
}
