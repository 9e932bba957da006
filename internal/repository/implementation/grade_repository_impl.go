package implementation

import (
	"context"
	"errors"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/mapper"
	"classrecord-be/internal/model"
	"classrecord-be/internal/repository/contract"
	"classrecord-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GradeMapper
}

func NewGradeRepository(db *gorm.DB) contract.GradeRepository {
	return &GradeRepositoryImpl{
		db:     db,
		mapper: mapper.NewGradeMapper(),
	}
}

func (r *GradeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GradeRepositoryImpl) Create(ctx context.Context, grade *entity.Grade) error {
	m := r.mapper.ToModel(grade)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*grade = *r.mapper.ToEntity(m)
	return nil
}

func (r *GradeRepositoryImpl) Update(ctx context.Context, grade *entity.Grade) error {
	m := r.mapper.ToModel(grade)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*grade = *r.mapper.ToEntity(m)
	return nil
}

func (r *GradeRepositoryImpl) DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userId).Delete(&model.Grade{})
	return res.RowsAffected, res.Error
}

func (r *GradeRepositoryImpl) DeleteByStudent(ctx context.Context, studentId, userId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("student_id = ? AND user_id = ?", studentId, userId).Delete(&model.Grade{})
	return res.RowsAffected, res.Error
}

func (r *GradeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Grade, error) {
	var m model.Grade
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GradeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Grade, error) {
	var models []*model.Grade
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GradeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Grade{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
