package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kviik/recipegram/internal/entities"
)

// defaultCategories are seeded on startup. The insert is idempotent so
// restarting against an existing database is safe.
var defaultCategories = []string{
	"Breakfast",
	"Lunch",
	"Dinner",
	"Dessert",
	"Vegetarian",
	"Vegan",
	"Snacks",
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	// SQLite does not enforce FOREIGN KEY ... ON DELETE CASCADE unless asked.
	// The pragma goes in the DSN so every pooled connection gets it, not just
	// the one that would run a PRAGMA statement.
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.Favorite{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedCategories(); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedCategories() error {
	for _, name := range defaultCategories {
		var existing entities.Category
		result := d.DB.Where("name = ?", name).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&entities.Category{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", name, err)
			}
			log.Printf("Created category: %s", name)
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
