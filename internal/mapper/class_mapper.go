package mapper

import (
	"time"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/model"

	"gorm.io/gorm"
)

type ClassMapper struct{}

func NewClassMapper() *ClassMapper {
	return &ClassMapper{}
}

func (m *ClassMapper) ToEntity(c *model.Class) *entity.Class {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Class{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		Subject:   c.Subject,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: c.DeletedAt.Valid,
	}
}

func (m *ClassMapper) ToModel(c *entity.Class) *model.Class {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Class{
		Id:        c.Id,
		UserId:    c.UserId,
		Name:      c.Name,
		Subject:   c.Subject,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *ClassMapper) ToEntities(classes []*model.Class) []*entity.Class {
	entities := make([]*entity.Class, len(classes))
	for i, c := range classes {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ClassMapper) ToModels(classes []*entity.Class) []*model.Class {
	models := make([]*model.Class, len(classes))
	for i, c := range classes {
		models[i] = m.ToModel(c)
	}
	return models
}
