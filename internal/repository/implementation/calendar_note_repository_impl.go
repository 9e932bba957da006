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

type CalendarNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CalendarNoteMapper
}

func NewCalendarNoteRepository(db *gorm.DB) contract.CalendarNoteRepository {
	return &CalendarNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewCalendarNoteMapper(),
	}
}

func (r *CalendarNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CalendarNoteRepositoryImpl) Create(ctx context.Context, note *entity.CalendarNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *CalendarNoteRepositoryImpl) Update(ctx context.Context, note *entity.CalendarNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *CalendarNoteRepositoryImpl) DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userId).Delete(&model.CalendarNote{})
	return res.RowsAffected, res.Error
}

func (r *CalendarNoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CalendarNote, error) {
	var m model.CalendarNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CalendarNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarNote, error) {
	var models []*model.CalendarNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CalendarNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CalendarNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
