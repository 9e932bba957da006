package dto

import (
	"time"

	"github.com/google/uuid"
)

type ExportBackupResponse struct {
	FileName  string `json:"file_name"`
	FilePath  string `json:"file_path"`
	SizeBytes int64  `json:"size_bytes"`
}

type ImportBackupRequest struct {
	FileName string `json:"file_name" validate:"required"`
}

type ImportBackupResponse struct {
	FileName string `json:"file_name"`
}

type BackupHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	Direction string    `json:"direction"`
	CreatedAt time.Time `json:"created_at"`
}

type BackupStatusResponse struct {
	SyncDir        string     `json:"sync_dir"`
	LastExportAt   *time.Time `json:"last_export_at,omitempty"`
	PendingChanges int64      `json:"pending_changes"`
}
