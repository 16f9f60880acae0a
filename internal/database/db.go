package database

import (
	"log"

	"waste-backend/internal/config"
	"waste-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("데이터베이스 연결 실패: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Record{},
		&models.Schedule{},
		&models.LiquidWasteEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate 실패: %v", err)
	}

	log.Println("데이터베이스 연결 완료. Migration 적용됨.")
}
