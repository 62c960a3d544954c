package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "promarket.com/promarket/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Application{},
		&model.Review{},
		&model.PaymentTransaction{},
		&model.FileResource{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
