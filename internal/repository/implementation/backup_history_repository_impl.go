package implementation

import (
	"context"
	"errors"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/mapper"
	"classrecord-be/internal/model"
	"classrecord-be/internal/repository/contract"
	"classrecord-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BackupHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BackupHistoryMapper
}

func NewBackupHistoryRepository(db *gorm.DB) contract.BackupHistoryRepository {
	return &BackupHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewBackupHistoryMapper(),
	}
}

func (r *BackupHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BackupHistoryRepositoryImpl) Create(ctx context.Context, record *entity.BackupHistory) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *BackupHistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BackupHistory, error) {
	var m model.BackupHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BackupHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BackupHistory, error) {
	var models []*model.BackupHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
