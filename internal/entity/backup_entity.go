package entity

import (
	"time"

	"github.com/google/uuid"
)

type BackupDirection string

const (
	BackupDirectionExport BackupDirection = "export"
	BackupDirectionImport BackupDirection = "import"
)

type BackupHistory struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FileName  string
	FilePath  string
	SizeBytes int64
	Direction BackupDirection
	CreatedAt time.Time
}
