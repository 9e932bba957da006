package model

import (
	"time"

	"github.com/google/uuid"
)

type BackupHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName  string    `gorm:"type:varchar(255);not null"`
	FilePath  string    `gorm:"type:text;not null"`
	SizeBytes int64     `gorm:"not null"`
	Direction string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BackupHistory) TableName() string {
	return "backup_history"
}
