package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarNote struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	ClassId     *uuid.UUID     `gorm:"type:uuid;index"`
	Date        time.Time      `gorm:"not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Type        string         `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CalendarNote) TableName() string {
	return "calendar_notes"
}
