package mapper

import (
	"classrecord-be/internal/entity"
	"classrecord-be/internal/model"
)

type BackupHistoryMapper struct{}

func NewBackupHistoryMapper() *BackupHistoryMapper {
	return &BackupHistoryMapper{}
}

func (m *BackupHistoryMapper) ToEntity(b *model.BackupHistory) *entity.BackupHistory {
	if b == nil {
		return nil
	}
	return &entity.BackupHistory{
		Id:        b.Id,
		UserId:    b.UserId,
		FileName:  b.FileName,
		FilePath:  b.FilePath,
		SizeBytes: b.SizeBytes,
		Direction: entity.BackupDirection(b.Direction),
		CreatedAt: b.CreatedAt,
	}
}

func (m *BackupHistoryMapper) ToModel(b *entity.BackupHistory) *model.BackupHistory {
	if b == nil {
		return nil
	}
	return &model.BackupHistory{
		Id:        b.Id,
		UserId:    b.UserId,
		FileName:  b.FileName,
		FilePath:  b.FilePath,
		SizeBytes: b.SizeBytes,
		Direction: string(b.Direction),
		CreatedAt: b.CreatedAt,
	}
}

func (m *BackupHistoryMapper) ToEntities(items []*model.BackupHistory) []*entity.BackupHistory {
	entities := make([]*entity.BackupHistory, len(items))
	for i, b := range items {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
