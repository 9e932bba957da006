package mapper

import (
	"time"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/model"

	"gorm.io/gorm"
)

type StudentMapper struct{}

func NewStudentMapper() *StudentMapper {
	return &StudentMapper{}
}

func (m *StudentMapper) ToEntity(s *model.Student) *entity.Student {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Student{
		Id:        s.Id,
		ClassId:   s.ClassId,
		UserId:    s.UserId,
		FullName:  s.FullName,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: s.DeletedAt.Valid,
	}
}

func (m *StudentMapper) ToModel(s *entity.Student) *model.Student {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Student{
		Id:        s.Id,
		ClassId:   s.ClassId,
		UserId:    s.UserId,
		FullName:  s.FullName,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *StudentMapper) ToEntities(students []*model.Student) []*entity.Student {
	entities := make([]*entity.Student, len(students))
	for i, s := range students {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *StudentMapper) ToModels(students []*entity.Student) []*model.Student {
	models := make([]*model.Student, len(students))
	for i, s := range students {
		models[i] = m.ToModel(s)
	}
	return models
}
