package database

import (
	"classrecord-be/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Student{},
		&model.Grade{},
		&model.Note{},
		&model.CalendarNote{},
		&model.BackupHistory{},
	)
}
