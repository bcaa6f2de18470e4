package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"triday/internal/config"
	"triday/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.JourneyProgress{},
		&db_models.DayAnswer{},
		&db_models.AccessLog{},
		&db_models.Payment{},
		&db_models.AppSetting{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
