package migration

import (
	"fmt"
	"log"

	"nutriscan-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ScanRecord{}); err != nil {
		log.Fatalf("Error migrating scan record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DailyProgress{}); err != nil {
		log.Fatalf("Error migrating daily progress database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MoodEntry{}); err != nil {
		log.Fatalf("Error migrating mood entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
