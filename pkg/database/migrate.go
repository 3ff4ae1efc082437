package database

import (
	"brainvault/models"

	"gorm.io/gorm"
)

// Migrate 建表及唯一索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Content{},
		&models.Brain{},
		&models.BrainEntry{},
		&models.ShareLink{},
		&models.SavedPost{},
	)
}
