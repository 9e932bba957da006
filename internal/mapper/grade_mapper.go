package mapper

import (
	"time"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/model"

	"gorm.io/gorm"
)

type GradeMapper struct{}

func NewGradeMapper() *GradeMapper {
	return &GradeMapper{}
}

func (m *GradeMapper) ToEntity(g *model.Grade) *entity.Grade {
	if g == nil {
		return nil
	}

	var deletedAt *time.Time
	if g.DeletedAt.Valid {
		t := g.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !g.UpdatedAt.IsZero() {
		t := g.UpdatedAt
		updatedAt = &t
	}

	return &entity.Grade{
		Id:        g.Id,
		StudentId: g.StudentId,
		UserId:    g.UserId,
		Title:     g.Title,
		Score:     g.Score,
		MaxScore:  g.MaxScore,
		GradedAt:  g.GradedAt,
		CreatedAt: g.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: g.DeletedAt.Valid,
	}
}

func (m *GradeMapper) ToModel(g *entity.Grade) *model.Grade {
	if g == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if g.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *g.DeletedAt, Valid: true}
	} else if g.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if g.UpdatedAt != nil {
		updatedAt = *g.UpdatedAt
	}

	return &model.Grade{
		Id:        g.Id,
		StudentId: g.StudentId,
		UserId:    g.UserId,
		Title:     g.Title,
		Score:     g.Score,
		MaxScore:  g.MaxScore,
		GradedAt:  g.GradedAt,
		CreatedAt: g.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *GradeMapper) ToEntities(grades []*model.Grade) []*entity.Grade {
	entities := make([]*entity.Grade, len(grades))
	for i, g := range grades {
		entities[i] = m.ToEntity(g)
	}
	return entities
}

func (m *GradeMapper) ToModels(grades []*entity.Grade) []*model.Grade {
	models := make([]*model.Grade, len(grades))
	for i, g := range grades {
		models[i] = m.ToModel(g)
	}
	return models
}
