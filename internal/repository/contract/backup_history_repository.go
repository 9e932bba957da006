package contract

import (
	"context"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"
)

type BackupHistoryRepository interface {
	Create(ctx context.Context, record *entity.BackupHistory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BackupHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BackupHistory, error)
}
